// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v := Parse("42")
	n, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	v = Parse("13.8")
	f, ok := v.Double()
	require.True(t, ok)
	assert.InDelta(t, 13.8, f, 1e-9)

	v = Parse("heating")
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "heating", s)
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Empty(), "null"},
		{Int(-3), "-3"},
		{Double(13.8), "13.8"},
		{String("heating"), `"heating"`},
		{ByteArray([]byte{1, 255}), "[1,255]"},
		{Array([]Value{Int(1), Int(2)}), "[1,2]"},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.value)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(b))
	}
}

func TestValueJSONDate(t *testing.T) {
	d, err := NewDate(2018, 12, 23)
	require.NoError(t, err)

	b, err := json.Marshal(DateValue(d))
	require.NoError(t, err)
	assert.Equal(t, `"2018-12-23"`, string(b))
}

func TestValueUnmarshalJSON(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte("42"), &v))
	n, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(42), n)

	require.NoError(t, json.Unmarshal([]byte("21.5"), &v))
	f, ok := v.Double()
	require.True(t, ok)
	assert.InDelta(t, 21.5, f, 1e-9)

	require.NoError(t, json.Unmarshal([]byte(`"dhw"`), &v))
	s, ok := v.Str()
	require.True(t, ok)
	assert.Equal(t, "dhw", s)

	require.NoError(t, json.Unmarshal([]byte("null"), &v))
	assert.True(t, v.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte("[1,2,255]"), &v))
	raw, ok := v.ByteSlice()
	require.True(t, ok)
	assert.Equal(t, []byte{1, 2, 255}, raw)

	assert.Error(t, json.Unmarshal([]byte("[1,300]"), &v))
}

func TestValueUnmarshalCircuitTimes(t *testing.T) {
	in := `{"mon":[{"from":{"Hour":6,"Minute":30},"to":{"Hour":22,"Minute":0}}]}`
	var v Value
	require.NoError(t, json.Unmarshal([]byte(in), &v))

	ct, ok := v.CircuitTimes()
	require.True(t, ok)
	require.Len(t, ct.Mon, 1)
	assert.Equal(t, TimeSpan{ClockTime{6, 30}, ClockTime{22, 0}}, ct.Mon[0])
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "", Empty().String())
	assert.Equal(t, "13.8", Double(13.8).String())
	assert.Equal(t, "[1, 2]", Array([]Value{Int(1), Int(2)}).String())
}
