// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"encoding/binary"
	"fmt"
)

// DeviceId is the 8-byte controller identifier read from the
// identification address. All fields are big-endian on the wire.
type DeviceId struct {
	Id                 uint16
	HardwareIndex      uint8
	SoftwareIndex      uint8
	ProtocolVersionLda uint8
	ProtocolVersionRda uint8
	DeveloperVersion   uint16
}

// ParseDeviceId decodes the 8-byte identifier block.
func ParseDeviceId(b []byte) (DeviceId, error) {
	if len(b) != 8 {
		return DeviceId{}, fmt.Errorf("%w: device id needs 8 bytes, got %d", ErrInvalidFormat, len(b))
	}
	return DeviceId{
		Id:                 binary.BigEndian.Uint16(b[0:2]),
		HardwareIndex:      b[2],
		SoftwareIndex:      b[3],
		ProtocolVersionLda: b[4],
		ProtocolVersionRda: b[5],
		DeveloperVersion:   binary.BigEndian.Uint16(b[6:8]),
	}, nil
}

// Bytes encodes the identifier back into its 8-byte wire form.
func (sf DeviceId) Bytes() []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint16(b[0:2], sf.Id)
	b[2] = sf.HardwareIndex
	b[3] = sf.SoftwareIndex
	b[4] = sf.ProtocolVersionLda
	b[5] = sf.ProtocolVersionRda
	binary.BigEndian.PutUint16(b[6:8], sf.DeveloperVersion)
	return b
}

func (sf DeviceId) String() string {
	return fmt.Sprintf("device ID 0x%04X, HX %d, SW %d, LDA %d, RDA %d, DEV 0x%04X",
		sf.Id, sf.HardwareIndex, sf.SoftwareIndex,
		sf.ProtocolVersionLda, sf.ProtocolVersionRda, sf.DeveloperVersion)
}

// DeviceIdF0 is the secondary 2-byte identifier distinguishing
// sub-variants within a narrow range of base identifiers.
type DeviceIdF0 uint16

// ParseDeviceIdF0 decodes the 2-byte F0 identifier block.
func ParseDeviceIdF0(b []byte) (DeviceIdF0, error) {
	if len(b) != 2 {
		return 0, fmt.Errorf("%w: F0 id needs 2 bytes, got %d", ErrInvalidFormat, len(b))
	}
	return DeviceIdF0(binary.BigEndian.Uint16(b)), nil
}

// Bytes encodes the F0 identifier back into its 2-byte wire form.
func (sf DeviceIdF0) Bytes() []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(sf))
	return b
}

func (sf DeviceIdF0) String() string {
	return fmt.Sprintf("F0 0x%04X", uint16(sf))
}
