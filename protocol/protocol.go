// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package protocol implements the two Optolink link protocols: the
// stateless sync-byte driven short protocol ("KW") and the checksummed
// telegram protocol ("VS2"), together with negotiation and detection.
package protocol

import (
	"errors"
	"time"

	"github.com/thinkgos/go-optolink/clog"
	"github.com/thinkgos/go-optolink/optolink"
)

// Common wire bytes shared by both protocols.
const (
	Reset byte = 0x04 // host nudge, resets the link state
	Sync  byte = 0x05 // controller readiness solicitation
	Ack   byte = 0x06
	Nack  byte = 0x15
)

// Protocol selects the negotiated link protocol variant.
type Protocol uint8

const (
	// None no protocol detected. An engine of this variant has nothing to
	// transact with: Negotiate, Get and Set fail with ErrNegotiation.
	None Protocol = iota
	// KW the stateless short protocol.
	KW
	// VS2 the framed telegram protocol.
	VS2
)

func (sf Protocol) String() string {
	switch sf {
	case KW:
		return "KW"
	case VS2:
		return "VS2"
	}
	return "none"
}

// ErrNegotiation the controller answered a negotiation step with an
// unexpected byte.
var ErrNegotiation = errors.New("protocol negotiation failed")

// defines the protocol configuration range
const (
	TimeoutMin = 1 * time.Second
	TimeoutMax = 5 * time.Minute

	SyncThresholdMin = 10 * time.Millisecond
	SyncThresholdMax = 5 * time.Second
)

// Config defines the protocol engine configuration.
// The default is applied for each unspecified value.
type Config struct {
	// Timeout bounds every composite operation: sync, negotiation,
	// telegram write, telegram read. Range [1s, 5m], default 10s.
	Timeout time.Duration

	// SyncThreshold is the per-byte duration under which an all-0x05
	// short-protocol response is accepted as data rather than discarded
	// as sync solicitations. The value is device dependent.
	// Range [10ms, 5s], default 500ms.
	SyncThreshold time.Duration
}

// Valid applies the default for each unspecified value.
func (sf *Config) Valid() error {
	if sf == nil {
		return errors.New("invalid pointer")
	}

	if sf.Timeout == 0 {
		sf.Timeout = optolink.DefaultTimeout
	} else if sf.Timeout < TimeoutMin || sf.Timeout > TimeoutMax {
		return errors.New("Timeout not in [1s, 5m]")
	}

	if sf.SyncThreshold == 0 {
		sf.SyncThreshold = 500 * time.Millisecond
	} else if sf.SyncThreshold < SyncThresholdMin || sf.SyncThreshold > SyncThresholdMax {
		return errors.New("SyncThreshold not in [10ms, 5s]")
	}

	return nil
}

// DefaultConfig default config
func DefaultConfig() Config {
	return Config{
		optolink.DefaultTimeout,
		500 * time.Millisecond,
	}
}

// Engine transacts over a link endpoint using the selected protocol
// variant. It is stateless apart from its configuration; the session
// owns the connected flag.
type Engine struct {
	proto Protocol
	cfg   Config
	clog.Clog
}

// New creates an engine for the given variant. The config is validated
// and filled with defaults.
func New(p Protocol, cfg Config) (*Engine, error) {
	if err := cfg.Valid(); err != nil {
		return nil, err
	}
	return &Engine{proto: p, cfg: cfg, Clog: clog.NewLogger("protocol ")}, nil
}

// Protocol return the engine's variant.
func (sf *Engine) Protocol() Protocol { return sf.proto }

// Negotiate (re)establishes the link protocol state.
func (sf *Engine) Negotiate(e optolink.Endpoint) error {
	switch sf.proto {
	case KW:
		return sf.kwNegotiate(e)
	case VS2:
		return sf.vs2Negotiate(e)
	}
	return ErrNegotiation
}

// Get reads exactly len(buf) bytes from the given controller address.
func (sf *Engine) Get(e optolink.Endpoint, addr uint16, buf []byte) error {
	switch sf.proto {
	case KW:
		return sf.kwGet(e, addr, buf)
	case VS2:
		return sf.vs2Get(e, addr, buf)
	}
	return ErrNegotiation
}

// Set writes the value bytes to the given controller address.
func (sf *Engine) Set(e optolink.Endpoint, addr uint16, value []byte) error {
	switch sf.proto {
	case KW:
		return sf.kwSet(e, addr, value)
	case VS2:
		return sf.vs2Set(e, addr, value)
	}
	return ErrNegotiation
}

// Detect probes the endpoint for a supported protocol: framed first,
// then short. None on total failure.
func Detect(e optolink.Endpoint, cfg Config) Protocol {
	if err := cfg.Valid(); err != nil {
		return None
	}
	eng := &Engine{proto: VS2, cfg: cfg, Clog: clog.NewLogger("protocol ")}
	if err := eng.vs2Negotiate(e); err == nil {
		return VS2
	}
	eng.proto = KW
	if err := eng.kwSync(e); err == nil {
		return KW
	}
	return None
}
