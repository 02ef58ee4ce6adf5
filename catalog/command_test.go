// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkgos/go-optolink/vdata"
)

func TestDecodeOutsideTemperature(t *testing.T) {
	c := commandTable["outside_temperature"]

	v, err := c.Decode([]byte{0x8a, 0x00})
	require.NoError(t, err)
	f, ok := v.Double()
	require.True(t, ok)
	assert.InDelta(t, 13.8, f, 1e-9)
	assert.Equal(t, "°C", c.Unit)
}

func TestDecodeEmptyBlock(t *testing.T) {
	c := commandTable["burner_hours"]

	v, err := c.Decode([]byte{0xff, 0xff, 0xff, 0xff})
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestEncodeEnumRejectsUnknownVariant(t *testing.T) {
	c := commandTable["heating_mode"]

	_, err := c.Encode(vdata.String("night"))
	require.ErrorIs(t, err, vdata.ErrInvalidArgument)
	assert.Contains(t, err.Error(), `no mapping for "night"`)

	b, err := c.Encode(vdata.String("dhw"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02}, b)
}

func TestEncodeBounds(t *testing.T) {
	c := commandTable["dhw_temperature_setpoint"]

	b, err := c.Encode(vdata.Int(50))
	require.NoError(t, err)
	assert.Equal(t, []byte{50}, b)

	_, err = c.Encode(vdata.Int(95))
	assert.ErrorIs(t, err, vdata.ErrInvalidArgument)

	_, err = c.Encode(vdata.Int(5))
	assert.ErrorIs(t, err, vdata.ErrInvalidArgument)
}

func TestDecodeBitSlice(t *testing.T) {
	c := commandTable["burner_status"]

	v, err := c.Decode([]byte{0x01})
	require.NoError(t, err)
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "on", s)

	v, err = c.Decode([]byte{0xfe})
	require.NoError(t, err)
	s, _ = v.Str()
	assert.Equal(t, "off", s)

	// the all-ones byte stays the sentinel
	v, err = c.Decode([]byte{0xff})
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestDecodeErrorHistory(t *testing.T) {
	c := systemCommandTable["error_history"]

	block := make([]byte, 90)
	for i := range block {
		block[i] = 0xff
	}
	copy(block, []byte{0xac, 0x20, 0x18, 0x12, 0x23, 0x06, 0x17, 0x49, 0x31})
	copy(block[9:], []byte{0x30, 0x20, 0x17, 0x01, 0x05, 0x04, 0x08, 0x15, 0x00})

	v, err := c.Decode(block)
	require.NoError(t, err)

	values, ok := v.Values()
	require.True(t, ok)
	require.Len(t, values, 2) // trailing empty records are dropped

	er, ok := values[0].ErrorRecord()
	require.True(t, ok)
	assert.Equal(t, uint8(0xac), er.Index)
	assert.Equal(t, "2018-12-23T17:49:31", er.Time.String())
}

func TestDecodeErrorHistoryAllEmpty(t *testing.T) {
	c := systemCommandTable["error_history"]

	block := make([]byte, 90)
	for i := range block {
		block[i] = 0xff
	}

	v, err := c.Decode(block)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestCircuitTimesRoundTripThroughCommand(t *testing.T) {
	c := commandTable["timer_hc1"]

	block := make([]byte, 56)
	for i := range block {
		block[i] = 0xff
	}
	// Monday 06:00 - 22:00
	block[0], block[1] = 0x30, 0xb0

	v, err := c.Decode(block)
	require.NoError(t, err)

	back, err := c.Encode(v)
	require.NoError(t, err)
	assert.Equal(t, block, back)
}

func TestSystemTimeRoundTrip(t *testing.T) {
	c := systemCommandTable["system_time"]

	dt, err := vdata.NewDateTime(2018, 12, 23, 17, 49, 31)
	require.NoError(t, err)

	b, err := c.Encode(vdata.DateTimeValue(dt))
	require.NoError(t, err)

	v, err := c.Decode(b)
	require.NoError(t, err)
	back, ok := v.DateTime()
	require.True(t, ok)
	assert.Equal(t, dt, back)
}
