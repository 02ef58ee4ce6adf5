// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeScaledTemperature(t *testing.T) {
	// i16 little-endian 0x008A = 138, div10 -> 13.8
	v, err := TypeDouble.Decode(RawI16, []byte{0x8a, 0x00}, Div10, nil)
	require.NoError(t, err)

	f, ok := v.Double()
	require.True(t, ok)
	assert.InDelta(t, 13.8, f, 1e-9)
}

func TestDecodeNegative(t *testing.T) {
	// i16 little-endian 0xFFBA = -70, div10 -> -7.0
	v, err := TypeDouble.Decode(RawI16, []byte{0xba, 0xff}, Div10, nil)
	require.NoError(t, err)

	f, ok := v.Double()
	require.True(t, ok)
	assert.InDelta(t, -7.0, f, 1e-9)
}

func TestDecodeEmptySentinel(t *testing.T) {
	v, err := TypeDouble.Decode(RawI32, []byte{0xff, 0xff, 0xff, 0xff}, Conversion{}, nil)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())

	v, err = TypeInt.Decode(RawI32, []byte{0xff, 0xff, 0xff, 0xff}, Conversion{}, nil)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestDecodeEnumMapping(t *testing.T) {
	mapping := map[int32]string{0: "standby", 1: "heating", 2: "dhw"}

	v, err := TypeInt.Decode(RawU8, []byte{0x01}, Conversion{}, mapping)
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "heating", s)

	_, err = TypeInt.Decode(RawU8, []byte{0x07}, Conversion{}, mapping)
	assert.ErrorIs(t, err, ErrUnknownEnumVariant)
}

func TestDecodeString(t *testing.T) {
	v, err := TypeString.Decode(RawArray, []byte{'V', 'S', '2', 0, 0}, Conversion{}, nil)
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "VS2", s)
}

func TestEncodeMapping(t *testing.T) {
	mapping := map[int32]string{0: "standby", 1: "heating", 2: "dhw"}

	b, err := TypeInt.Encode(String("dhw"), RawU8, 1, Conversion{}, mapping)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, b)

	_, err = TypeInt.Encode(String("night"), RawU8, 1, Conversion{}, mapping)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TypeInt.Encode(Int(1), RawU8, 1, Conversion{}, mapping)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodeScaled(t *testing.T) {
	b, err := TypeDouble.Encode(Double(13.8), RawI16, 2, Div10, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x8a, 0x00}, b)

	// round trip back through the decoder
	v, err := TypeDouble.Decode(RawI16, b, Div10, nil)
	require.NoError(t, err)
	f, _ := v.Double()
	assert.InDelta(t, 13.8, f, 1e-9)
}

func TestEncodeString(t *testing.T) {
	b, err := TypeString.Encode(String("ab"), RawArray, 4, Conversion{}, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 'b', 0, 0}, b)

	_, err = TypeString.Encode(String("too long"), RawArray, 4, Conversion{}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodeTypeMismatch(t *testing.T) {
	_, err := TypeDouble.Encode(String("x"), RawU8, 1, Conversion{}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = TypeDeviceId.Encode(Int(1), RawArray, 8, Conversion{}, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEncodeDateTime(t *testing.T) {
	dt, err := NewDateTime(2018, 12, 23, 17, 49, 31)
	require.NoError(t, err)

	b, err := TypeDateTime.Encode(DateTimeValue(dt), RawArray, 8, Conversion{}, nil)
	require.NoError(t, err)
	assert.Equal(t, dt.Bytes(), b)

	// string form is parsed
	b, err = TypeDateTime.Encode(String("2018-12-23T17:49:31"), RawArray, 8, Conversion{}, nil)
	require.NoError(t, err)
	assert.Equal(t, dt.Bytes(), b)
}

func TestDecodeDeviceId(t *testing.T) {
	v, err := TypeDeviceId.Decode(RawArray,
		[]byte{0x20, 0xcb, 0x00, 0x08, 0x00, 0x00, 0x01, 0x46}, Conversion{}, nil)
	require.NoError(t, err)

	id, ok := v.DeviceId()
	require.True(t, ok)
	assert.Equal(t, uint16(0x20cb), id.Id)
	assert.Equal(t, uint8(0x08), id.SoftwareIndex)
	assert.Equal(t, uint16(0x0146), id.DeveloperVersion)
}

func TestDecodeErrorRecord(t *testing.T) {
	v, err := TypeError.Decode(RawArray,
		[]byte{0xac, 0x20, 0x18, 0x12, 0x23, 0x06, 0x17, 0x49, 0x31}, Conversion{}, nil)
	require.NoError(t, err)

	er, ok := v.ErrorRecord()
	require.True(t, ok)
	assert.Equal(t, uint8(0xac), er.Index)
	assert.Equal(t, "2018-12-23T17:49:31", er.Time.String())
	assert.Equal(t, uint8(6), er.Time.Weekday())
}
