// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import "encoding/binary"

// RawType is the numeric layout of a value region on the wire,
// little-endian for multi byte widths.
type RawType uint8

const (
	RawI8 RawType = iota
	RawI16
	RawI32
	RawU8
	RawU16
	RawU32
	RawArray
)

// Size return the octet size for fixed width types, false for RawArray.
func (sf RawType) Size() (int, bool) {
	switch sf {
	case RawI8, RawU8:
		return 1, true
	case RawI16, RawU16:
		return 2, true
	case RawI32, RawU32:
		return 4, true
	default:
		return 0, false
	}
}

func (sf RawType) String() string {
	switch sf {
	case RawI8:
		return "i8"
	case RawI16:
		return "i16"
	case RawI32:
		return "i32"
	case RawU8:
		return "u8"
	case RawU16:
		return "u16"
	case RawU32:
		return "u32"
	case RawArray:
		return "array"
	}
	return "unknown"
}

// Widen reinterprets the slice as this raw type and widens it to int64.
// The slice length must equal the raw size.
func (sf RawType) Widen(b []byte) int64 {
	switch sf {
	case RawI8:
		return int64(int8(b[0]))
	case RawI16:
		return int64(int16(binary.LittleEndian.Uint16(b)))
	case RawI32:
		return int64(int32(binary.LittleEndian.Uint32(b)))
	case RawU8:
		return int64(b[0])
	case RawU16:
		return int64(binary.LittleEndian.Uint16(b))
	case RawU32:
		return int64(binary.LittleEndian.Uint32(b))
	}
	panic("vdata: widen on array raw type")
}

// Narrow produces the little-endian wire bytes of n in this raw type.
func (sf RawType) Narrow(n int64) []byte {
	switch sf {
	case RawI8, RawU8:
		return []byte{byte(n)}
	case RawI16, RawU16:
		b := make([]byte, 2)
		binary.LittleEndian.PutUint16(b, uint16(n))
		return b
	case RawI32, RawU32:
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, uint32(n))
		return b
	}
	panic("vdata: narrow on array raw type")
}
