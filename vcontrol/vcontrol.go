// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package vcontrol ties the link, protocol, codec and catalog together
// into a controller session: connect, identify the device, then read and
// write values by command name.
package vcontrol

import (
	"errors"
	"fmt"

	"github.com/thinkgos/go-optolink/catalog"
	"github.com/thinkgos/go-optolink/clog"
	"github.com/thinkgos/go-optolink/optolink"
	"github.com/thinkgos/go-optolink/protocol"
	"github.com/thinkgos/go-optolink/vdata"
)

// VControl is an Optolink session to one specific device using one
// negotiated protocol. It exclusively owns the endpoint and is not safe
// for concurrent use; transactions within a session are strictly serial.
type VControl struct {
	endpoint optolink.Endpoint
	engine   *protocol.Engine
	device   *catalog.Device
	// connected is the single source of truth for "must renegotiate
	// before the next transaction". Initially false, cleared by any
	// protocol or link failure, set by a successful negotiation.
	connected bool
	clog.Clog
}

// Connect detects protocol and device on the endpoint and builds the
// session using the default configuration.
func Connect(e optolink.Endpoint) (*VControl, error) {
	return ConnectConfig(e, protocol.DefaultConfig())
}

// ConnectConfig detects protocol and device on the endpoint. If no
// protocol answers, the session falls back to the short protocol flagged
// disconnected: the identification read syncs on its own, and the
// session renegotiates before it is returned.
func ConnectConfig(e optolink.Endpoint, cfg protocol.Config) (*VControl, error) {
	sf := &VControl{endpoint: e, Clog: clog.NewLogger("vcontrol ")}

	proto := protocol.Detect(e, cfg)
	if proto == protocol.None {
		proto = protocol.KW
		sf.Warn("no protocol detected, defaulting to %s", proto)
	} else {
		sf.connected = true
		sf.Debug("protocol detected: %s", proto)
	}

	engine, err := protocol.New(proto, cfg)
	if err != nil {
		return nil, err
	}
	sf.engine = engine

	idCommand, _ := catalog.SystemCommand("device_id")
	v, err := idCommand.Get(e, engine)
	if err != nil {
		sf.connected = false
		return nil, err
	}
	id, ok := v.DeviceId()
	if !ok {
		return nil, fmt.Errorf("%w: expected device id, got %s", vdata.ErrInvalidFormat, v.Kind())
	}
	sf.Debug("%s", id)

	var f0 *vdata.DeviceIdF0
	if catalog.RequiresF0(id) {
		f0Command, _ := catalog.SystemCommand("device_id_f0")
		switch v, err := f0Command.Get(e, engine); {
		case err != nil:
			sf.Debug("failed to get device_id_f0: %v", err)
		case v.IsEmpty():
		default:
			if sub, ok := v.DeviceIdF0(); ok {
				f0 = &sub
				sf.Debug("%s", sub)
			}
		}
	}

	device, err := catalog.Detect(id, f0)
	if err != nil {
		return nil, err
	}
	sf.Debug("device detected: %s", device.Name())
	sf.device = device

	if err := sf.renegotiate(); err != nil {
		return nil, err
	}
	return sf, nil
}

// renegotiate re-runs protocol negotiation when the session is flagged
// disconnected, purging stale input first.
func (sf *VControl) renegotiate() error {
	if sf.connected {
		return nil
	}
	if err := sf.endpoint.Purge(); err != nil {
		return err
	}
	if err := sf.engine.Negotiate(sf.endpoint); err != nil {
		return err
	}
	sf.connected = true
	return nil
}

// Device return the resolved device profile.
func (sf *VControl) Device() *catalog.Device { return sf.device }

// Protocol return the negotiated protocol variant.
func (sf *VControl) Protocol() protocol.Protocol { return sf.engine.Protocol() }

// Close aborts any in-flight transaction and releases the endpoint.
func (sf *VControl) Close() error {
	sf.connected = false
	return sf.endpoint.Close()
}

// Get reads the value for the given command name.
func (sf *VControl) Get(name string) (OutputValue, error) {
	if err := sf.renegotiate(); err != nil {
		return OutputValue{}, err
	}

	command, err := catalog.Lookup(sf.device, name)
	if err != nil {
		return OutputValue{}, err
	}

	value, err := command.Get(sf.endpoint, sf.engine)
	if err != nil {
		if isFatal(err) {
			sf.connected = false
		}
		return OutputValue{}, err
	}

	mapping := command.Mapping
	if command.DataType == vdata.TypeError {
		mapping = sf.device.Errors()
	}
	return OutputValue{Value: value, Unit: command.Unit, Mapping: mapping}, nil
}

// Set writes the value for the given command name. The command's access
// mode must include write.
func (sf *VControl) Set(name string, value vdata.Value) error {
	if err := sf.renegotiate(); err != nil {
		return err
	}

	command, err := catalog.Lookup(sf.device, name)
	if err != nil {
		return err
	}

	if err := command.Set(sf.endpoint, sf.engine, value); err != nil {
		if isFatal(err) {
			sf.connected = false
		}
		return err
	}
	return nil
}

// isFatal separates protocol and link failures, which force the next
// transaction to renegotiate, from codec and catalog errors, which do
// not touch the link state.
func isFatal(err error) bool {
	switch {
	case errors.Is(err, vdata.ErrInvalidArgument),
		errors.Is(err, vdata.ErrUnknownEnumVariant),
		errors.Is(err, vdata.ErrInvalidFormat),
		errors.Is(err, vdata.ErrUnsupportedConversion),
		errors.Is(err, catalog.ErrUnsupportedCommand),
		errors.Is(err, catalog.ErrUnsupportedMode):
		return false
	}
	return true
}
