// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package catalog

import (
	"fmt"

	"github.com/thinkgos/go-optolink/clog"
	"github.com/thinkgos/go-optolink/vdata"
)

// The hardware index is carried by the identifier but not trusted for
// matching, mirroring the vendor data.
const useHardwareIndex = false

// plog diagnostics for device resolution, off unless enabled via LogMode.
var plog = clog.NewLogger("catalog ")

// LogMode enable or disable catalog diagnostics output.
func LogMode(enable bool) { plog.LogMode(enable) }

// Device is the profile of one controller model: its display name, the
// commands it supports and its error-code table.
type Device struct {
	name     string
	commands map[string]*Command
	errors   map[int32]string
}

// Name return the display name of the device.
func (sf *Device) Name() string { return sf.name }

// Commands return all supported commands for the device.
func (sf *Device) Commands() map[string]*Command { return sf.commands }

// Command return a specific command for the device, if it is supported.
func (sf *Device) Command(name string) (*Command, bool) {
	c, ok := sf.commands[name]
	return c, ok
}

// Errors return the mapping from error codes to strings.
func (sf *Device) Errors() map[int32]string { return sf.errors }

// DeviceIdRange is the catalog key for detecting the device type: a base
// identifier plus optional exact values or inclusive ranges over the
// hardware index, software index and F0 identifier.
type DeviceIdRange struct {
	Id                uint16
	HardwareIndex     *uint8
	HardwareIndexTill *uint8
	SoftwareIndex     *uint8
	SoftwareIndexTill *uint8
	F0                *uint16
	F0Till            *uint16
}

type deviceEntry struct {
	rng    DeviceIdRange
	device *Device
}

// RequiresF0 reports whether the observed base identifier falls in the
// narrow range whose sub-variants are distinguished by the secondary F0
// identifier.
func RequiresF0(id vdata.DeviceId) bool {
	return id.Id >= 192 && id.Id <= 203 && id.SoftwareIndex >= 200
}

// Detect resolves an observed identifier (and optional F0 identifier) to
// a device profile. The tie-break order is strict: exact F0, F0 range,
// exact indices, index ranges, then any entry sharing the base id.
func Detect(id vdata.DeviceId, f0 *vdata.DeviceIdF0) (*Device, error) {
	var candidates []deviceEntry
	for _, entry := range devices {
		if entry.rng.Id == id.Id {
			candidates = append(candidates, entry)
		}
	}

	if f0 != nil && RequiresF0(id) {
		for _, entry := range candidates {
			if entry.rng.F0 != nil && *entry.rng.F0 == uint16(*f0) {
				plog.Debug("found device %q with exact ID and F0", entry.device.name)
				return entry.device, nil
			}
		}

		for _, entry := range candidates {
			if entry.rng.F0 != nil && entry.rng.F0Till != nil &&
				uint16(*f0) >= *entry.rng.F0 && uint16(*f0) <= *entry.rng.F0Till {
				plog.Debug("found device %q with exact ID and F0 in range [0x%04X, 0x%04X]",
					entry.device.name, *entry.rng.F0, *entry.rng.F0Till)
				return entry.device, nil
			}
		}
	}

	var fallback *Device

	for _, entry := range candidates {
		if entry.rng.HardwareIndex != nil && entry.rng.SoftwareIndex != nil {
			if (!useHardwareIndex || id.HardwareIndex == *entry.rng.HardwareIndex) &&
				id.SoftwareIndex == *entry.rng.SoftwareIndex {
				plog.Debug("found device %q with exact ID, hardware index and software index", entry.device.name)
				return entry.device, nil
			}
		}
		if fallback == nil {
			fallback = entry.device
		}
	}

	for _, entry := range candidates {
		if entry.rng.HardwareIndex != nil && entry.rng.SoftwareIndex != nil &&
			entry.rng.HardwareIndexTill != nil && entry.rng.SoftwareIndexTill != nil {
			hwOK := !useHardwareIndex ||
				(id.HardwareIndex >= *entry.rng.HardwareIndex && id.HardwareIndex <= *entry.rng.HardwareIndexTill)
			swOK := id.SoftwareIndex >= *entry.rng.SoftwareIndex && id.SoftwareIndex <= *entry.rng.SoftwareIndexTill
			if hwOK && swOK {
				plog.Debug("found device %q with exact ID and software index in range [%d, %d]",
					entry.device.name, *entry.rng.SoftwareIndex, *entry.rng.SoftwareIndexTill)
				return entry.device, nil
			}
		}
	}

	if fallback != nil {
		plog.Debug("found device %q with exact ID", fallback.name)
		return fallback, nil
	}

	if f0 != nil {
		return nil, fmt.Errorf("%w: %s, %s", ErrUnsupportedDevice, id, *f0)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDevice, id)
}

// commandSet builds a device command map from catalog names. The names
// come from the generated device tables, an unknown one is a build
// defect.
func commandSet(names ...string) map[string]*Command {
	m := make(map[string]*Command, len(names))
	for _, name := range names {
		c, ok := commandTable[name]
		if !ok {
			panic("catalog: unknown command " + name)
		}
		m[name] = c
	}
	return m
}
