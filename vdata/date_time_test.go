// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcdHelpers(t *testing.T) {
	for n := uint8(0); n <= 99; n++ {
		b := dec2bcd(n)
		assert.Equal(t, fmt.Sprintf("%02d", n), fmt.Sprintf("%02x", b))
		assert.Equal(t, n, bcd2dec(b))
	}
}

func TestDateWeekday(t *testing.T) {
	d, err := NewDate(2018, 12, 23)
	require.NoError(t, err)
	assert.Equal(t, uint8(6), d.Weekday()) // Sunday

	d, err = NewDate(2025, 12, 17)
	require.NoError(t, err)
	assert.Equal(t, uint8(2), d.Weekday()) // Wednesday
}

func TestDateInvalid(t *testing.T) {
	_, err := NewDate(2018, 14, 1)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = NewDate(2018, 2, 30)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseDate([]byte{0x20, 0x18, 0x14, 0x01, 0x00, 0, 0, 0})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestDateTimeBytes(t *testing.T) {
	dt, err := NewDateTime(2018, 12, 23, 17, 49, 31)
	require.NoError(t, err)

	assert.Equal(t, []byte{0x20, 0x18, 0x12, 0x23, 0x06, 0x17, 0x49, 0x31}, dt.Bytes())
	assert.Equal(t, "2018-12-23T17:49:31", dt.String())
}

func TestParseDateTime(t *testing.T) {
	dt, err := ParseDateTime([]byte{0x20, 0x25, 0x12, 0x17, 0x02, 0x23, 0x31, 0x14})
	require.NoError(t, err)

	assert.Equal(t, uint16(2025), dt.Year)
	assert.Equal(t, uint8(12), dt.Month)
	assert.Equal(t, uint8(17), dt.Day)
	assert.Equal(t, uint8(2), dt.Weekday())
	assert.Equal(t, uint8(23), dt.Hour)
	assert.Equal(t, uint8(31), dt.Minute)
	assert.Equal(t, uint8(14), dt.Second)
}

func TestDateTimeRoundTrip(t *testing.T) {
	dt, err := NewDateTime(2021, 3, 1, 6, 0, 59)
	require.NoError(t, err)

	back, err := ParseDateTime(dt.Bytes())
	require.NoError(t, err)
	assert.Equal(t, dt, back)
}

func TestParseDateTimeString(t *testing.T) {
	dt, err := ParseDateTimeString("2018-12-23T17:49:31")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x20, 0x18, 0x12, 0x23, 0x06, 0x17, 0x49, 0x31}, dt.Bytes())

	_, err = ParseDateTimeString("not a time")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
