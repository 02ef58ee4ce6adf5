// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalingConversions(t *testing.T) {
	v, err := Div10.Apply(Double(138))
	require.NoError(t, err)
	f, _ := v.Double()
	assert.InDelta(t, 13.8, f, 1e-9)

	back, err := Div10.Invert(v)
	require.NoError(t, err)
	f, _ = back.Double()
	assert.InDelta(t, 138, f, 1e-9)

	// integer input divides with integer arithmetic and stays integral
	v, err = Div2.Apply(Int(10))
	require.NoError(t, err)
	n, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(5), n)

	v, err = Mul100.Apply(Int(3))
	require.NoError(t, err)
	n, _ = v.Int()
	assert.Equal(t, int64(300), n)
}

func TestMulOffset(t *testing.T) {
	conv := MulOffset(0.5, 10)

	v, err := conv.Apply(Int(40))
	require.NoError(t, err)
	f, _ := v.Double()
	assert.InDelta(t, 30, f, 1e-9)

	back, err := conv.Invert(v)
	require.NoError(t, err)
	f, _ = back.Double()
	assert.InDelta(t, 40, f, 1e-9)
}

func TestSecConversions(t *testing.T) {
	v, err := SecToMinute.Apply(Int(185))
	require.NoError(t, err)
	n, _ := v.Int()
	assert.Equal(t, int64(3), n)

	v, err = SecToHour.Apply(Int(7200))
	require.NoError(t, err)
	n, _ = v.Int()
	assert.Equal(t, int64(2), n)
}

func TestHexByteConversions(t *testing.T) {
	v, err := HexByteToVersion.Apply(ByteArray([]byte{1, 12, 3}))
	require.NoError(t, err)
	s, _ := v.Str()
	assert.Equal(t, "1.12.3", s)

	v, err = HexByteToDecimalByte.Apply(ByteArray([]byte{4, 17}))
	require.NoError(t, err)
	s, _ = v.Str()
	assert.Equal(t, "417", s)

	v, err = HexByteToAsciiByte.Apply(ByteArray([]byte("0A12")))
	require.NoError(t, err)
	s, _ = v.Str()
	assert.Equal(t, "A12", s)

	_, err = HexByteToVersion.Invert(String("1.2.3"))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}

func TestIPAddress(t *testing.T) {
	v, err := IPAddress.Apply(ByteArray([]byte{192, 168, 2, 10}))
	require.NoError(t, err)
	s, _ := v.Str()
	assert.Equal(t, "192.168.2.10", s)

	back, err := IPAddress.Invert(v)
	require.NoError(t, err)
	b, _ := back.ByteSlice()
	assert.Equal(t, []byte{192, 168, 2, 10}, b)

	_, err = IPAddress.Invert(String("not an ip"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRotateBytes(t *testing.T) {
	v, err := RotateBytes.Apply(ByteArray([]byte{1, 2, 3}))
	require.NoError(t, err)
	b, _ := v.ByteSlice()
	assert.Equal(t, []byte{3, 2, 1}, b)

	back, err := RotateBytes.Invert(v)
	require.NoError(t, err)
	b, _ = back.ByteSlice()
	assert.Equal(t, []byte{1, 2, 3}, b)
}

func TestDayMonthBCD(t *testing.T) {
	v, err := DayMonthBCD.Apply(ByteArray([]byte{0x24, 0x12}))
	require.NoError(t, err)
	s, _ := v.Str()
	assert.Equal(t, "24.12", s)

	back, err := DayMonthBCD.Invert(v)
	require.NoError(t, err)
	b, _ := back.ByteSlice()
	assert.Equal(t, []byte{0x24, 0x12}, b)

	_, err = DayMonthBCD.Apply(ByteArray([]byte{0x99, 0x01}))
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDayToDate(t *testing.T) {
	v, err := DayToDate.Apply(Int(0))
	require.NoError(t, err)
	d, _ := v.Date()
	assert.Equal(t, Date{1970, 1, 1}, d)

	v, err = DayToDate.Apply(Int(19000))
	require.NoError(t, err)
	d, _ = v.Date()

	back, err := DayToDate.Invert(DateValue(d))
	require.NoError(t, err)
	n, _ := back.Int()
	assert.Equal(t, int64(19000), n)
}

func TestDateBCD(t *testing.T) {
	dt, err := NewDateTime(2018, 12, 23, 17, 49, 31)
	require.NoError(t, err)

	v, err := DateBCD.Apply(DateTimeValue(dt))
	require.NoError(t, err)
	d, ok := v.Date()
	require.True(t, ok)
	assert.Equal(t, dt.Date, d)
}

func TestUnsupportedConversions(t *testing.T) {
	for _, conv := range []Conversion{
		Estrich, LastBurnerCheck, LastCheckInterval, VitocomNV,
		DatenpunktAddr, Kesselfolge, PhoneToBCD, Time53,
	} {
		_, err := conv.Apply(ByteArray([]byte{1, 2}))
		assert.ErrorIs(t, err, ErrUnsupportedConversion, conv.String())
		_, err = conv.Invert(ByteArray([]byte{1, 2}))
		assert.ErrorIs(t, err, ErrUnsupportedConversion, conv.String())
	}
}

func TestConversionTypeMismatch(t *testing.T) {
	_, err := Div10.Apply(String("nope"))
	assert.ErrorIs(t, err, ErrUnsupportedConversion)
}
