// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package catalog is the static, read-only registry of commands, enum
// mappings and device profiles, and resolves observed device identifiers
// to profiles.
package catalog

import (
	"errors"
	"fmt"

	"github.com/thinkgos/go-optolink/optolink"
	"github.com/thinkgos/go-optolink/protocol"
	"github.com/thinkgos/go-optolink/vdata"
)

var (
	// ErrUnsupportedDevice no catalog entry matches the observed
	// identifier. Fatal for the session.
	ErrUnsupportedDevice = errors.New("unsupported device")
	// ErrUnsupportedCommand the name is not in the catalog.
	ErrUnsupportedCommand = errors.New("unsupported command")
	// ErrUnsupportedMode read on a write-only address or vice versa.
	ErrUnsupportedMode = errors.New("unsupported mode")
)

// Command binds a symbolic name to an address, access mode, byte layout,
// raw and semantic type, optional conversion and optional enum mapping.
// Commands are immutable, the catalog builds them once at load time.
type Command struct {
	// Addr is the 16-bit memory address on the controller.
	Addr uint16
	// Mode declares the supported access directions.
	Mode vdata.AccessMode
	// RawType is the wire layout of the value region, little-endian.
	RawType vdata.RawType
	// DataType is the semantic type driving the decoder.
	DataType vdata.DataType
	// BlockLen is the total byte count of the request/response payload.
	BlockLen int
	// ByteLen/BytePos select the value region within the block.
	ByteLen int
	BytePos int
	// BitPos/BitLen select a bit slice within the single byte at BytePos.
	// Active when BitLen > 0, which requires ByteLen == 1.
	BitPos int
	BitLen int
	// BlockCount repeats the slice across consecutive records of size
	// BlockLen/BlockCount. 0 or 1 means a single record.
	BlockCount int
	// Conversion is the optional value conversion, the zero value is none.
	Conversion vdata.Conversion
	// Mapping is the optional enum table applied to decoded integers.
	Mapping map[int32]string
	// Unit is the optional display unit.
	Unit string
	// LowerBound/UpperBound validate numeric writes, inclusive.
	LowerBound *float64
	UpperBound *float64
}

// regionLen is the width of the value region: the raw size for fixed
// width raw types, ByteLen otherwise. The effective block length grows
// to hold it.
func (sf *Command) regionLen() (blockLen, byteLen int) {
	blockLen, byteLen = sf.BlockLen, sf.ByteLen
	if size, ok := sf.RawType.Size(); ok {
		byteLen = size
		if size > blockLen {
			blockLen = size
		}
	}
	return blockLen, byteLen
}

// Get reads and decodes the command's value.
func (sf *Command) Get(e optolink.Endpoint, eng *protocol.Engine) (vdata.Value, error) {
	if !sf.Mode.IsRead() {
		return vdata.Value{}, fmt.Errorf("%w: address 0x%04X does not support reading", ErrUnsupportedMode, sf.Addr)
	}

	blockLen, _ := sf.regionLen()
	block := make([]byte, blockLen)
	if err := eng.Get(e, sf.Addr, block); err != nil {
		return vdata.Value{}, err
	}
	return sf.Decode(block)
}

// Set validates, encodes and writes the given value.
func (sf *Command) Set(e optolink.Endpoint, eng *protocol.Engine, v vdata.Value) error {
	if !sf.Mode.IsWrite() {
		return fmt.Errorf("%w: address 0x%04X does not support writing", ErrUnsupportedMode, sf.Addr)
	}

	b, err := sf.Encode(v)
	if err != nil {
		return err
	}
	return eng.Set(e, sf.Addr, b)
}

// Decode runs the codec over a raw block read for this command.
func (sf *Command) Decode(block []byte) (vdata.Value, error) {
	if sf.BlockCount > 1 {
		recLen := sf.BlockLen / sf.BlockCount
		values := make([]vdata.Value, 0, sf.BlockCount)
		for i := 0; i < sf.BlockCount; i++ {
			v, err := sf.decodeRecord(block[i*recLen : (i+1)*recLen])
			if err != nil {
				return vdata.Value{}, err
			}
			if !v.IsEmpty() {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return vdata.Empty(), nil
		}
		return vdata.Array(values), nil
	}
	return sf.decodeRecord(block)
}

func (sf *Command) decodeRecord(rec []byte) (vdata.Value, error) {
	_, byteLen := sf.regionLen()
	if sf.BytePos+byteLen > len(rec) {
		return vdata.Value{}, fmt.Errorf("%w: region %d+%d exceeds block %d",
			vdata.ErrInvalidFormat, sf.BytePos, byteLen, len(rec))
	}
	region := rec[sf.BytePos : sf.BytePos+byteLen]

	if sf.BitLen > 0 {
		b := region[0]
		if b != 0xff { // 0xFF stays the sentinel even for bit slices
			region = []byte{b << sf.BitPos >> (8 - sf.BitLen)}
		}
	}

	return sf.DataType.Decode(sf.RawType, region, sf.Conversion, sf.Mapping)
}

// Encode validates the value against type and bounds and produces the
// wire bytes.
func (sf *Command) Encode(v vdata.Value) ([]byte, error) {
	if sf.LowerBound != nil || sf.UpperBound != nil {
		if f, ok := v.Number(); ok {
			if sf.LowerBound != nil && f < *sf.LowerBound {
				return nil, fmt.Errorf("%w: %v below lower bound %v", vdata.ErrInvalidArgument, f, *sf.LowerBound)
			}
			if sf.UpperBound != nil && f > *sf.UpperBound {
				return nil, fmt.Errorf("%w: %v above upper bound %v", vdata.ErrInvalidArgument, f, *sf.UpperBound)
			}
		}
	}

	_, byteLen := sf.regionLen()
	return sf.DataType.Encode(v, sf.RawType, byteLen, sf.Conversion, sf.Mapping)
}
