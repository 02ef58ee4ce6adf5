// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkgos/go-optolink/optolink"
)

// identification response payload for a VScotHO1_4 controller
var vs2IdentPayload = []byte{0x01, 0x01, 0x00, 0xf8, 0x08, 0x20, 0xcb, 0x00, 0x08, 0x00, 0x00, 0x01, 0x46}

func TestVs2Checksum(t *testing.T) {
	assert.Equal(t, byte(0x06), vs2Checksum([]byte{0x00, 0x01, 0x00, 0xf8, 0x08}))
	assert.Equal(t, byte(0x49), vs2Checksum(vs2IdentPayload))
	assert.Equal(t, byte(0x00), vs2Checksum(nil))
}

func TestVs2ChecksumProperty(t *testing.T) {
	for length := 0; length <= 255; length += 17 {
		payload := make([]byte, length)
		want := byte(length)
		for i := range payload {
			payload[i] = byte(i * 31)
			want += payload[i]
		}
		assert.Equal(t, want, vs2Checksum(payload))
	}
}

func TestVs2Negotiate(t *testing.T) {
	e := newTestEndpoint([]byte{Sync}, []byte{Ack})
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	require.NoError(t, eng.Negotiate(e))
	assert.Equal(t, []byte{Reset, 0x16, 0x00, 0x00}, e.written)
}

func TestVs2NegotiateRejected(t *testing.T) {
	e := newTestEndpoint([]byte{Sync}, []byte{0x42})
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	assert.ErrorIs(t, eng.Negotiate(e), ErrNegotiation)
}

func TestVs2GetDeviceIdent(t *testing.T) {
	e := newTestEndpoint(
		[]byte{Ack},            // request telegram acknowledged
		[]byte{0x41},           // response leadin
		[]byte{0x0d},           // response length
		vs2IdentPayload,        // response payload
		[]byte{0x49},           // response checksum
	)
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	buf := make([]byte, 8)
	require.NoError(t, eng.Get(e, 0x00f8, buf))
	assert.Equal(t, []byte{0x20, 0xcb, 0x00, 0x08, 0x00, 0x00, 0x01, 0x46}, buf)

	// request telegram, then the Ack for the response telegram
	assert.Equal(t, []byte{0x41, 0x05, 0x00, 0x01, 0x00, 0xf8, 0x08, 0x06, Ack}, e.written)
}

func TestVs2GetChecksumFaultInjection(t *testing.T) {
	// first response telegram carries a corrupted checksum: the engine
	// answers Nack and accepts the retransmission
	e := newTestEndpoint(
		[]byte{Ack},
		[]byte{0x41}, []byte{0x0d}, vs2IdentPayload, []byte{0x48}, // corrupted
		[]byte{0x41}, []byte{0x0d}, vs2IdentPayload, []byte{0x49}, // retransmitted
	)
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	buf := make([]byte, 8)
	require.NoError(t, eng.Get(e, 0x00f8, buf))
	assert.Equal(t, []byte{0x20, 0xcb, 0x00, 0x08, 0x00, 0x00, 0x01, 0x46}, buf)

	// request, Nack on the corrupted telegram, Ack on the good one
	assert.Equal(t, []byte{0x41, 0x05, 0x00, 0x01, 0x00, 0xf8, 0x08, 0x06, Nack, Ack}, e.written)
}

func TestVs2WriteRetriesOnNack(t *testing.T) {
	e := newTestEndpoint(
		[]byte{Nack}, // first send rejected
		[]byte{Ack},  // retry accepted
		[]byte{0x41}, []byte{0x05}, []byte{0x01, 0x02, 0x63, 0x00, 0x01}, []byte{0x6c},
	)
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	require.NoError(t, eng.Set(e, 0x6300, []byte{50}))

	telegram := []byte{0x41, 0x06, 0x00, 0x02, 0x63, 0x00, 0x01, 0x32, 0x9e}
	want := append(append([]byte{}, telegram...), telegram...)
	want = append(want, Ack)
	assert.Equal(t, want, e.written)
}

func TestVs2GetEchoMismatch(t *testing.T) {
	// response echoes the wrong address
	payload := []byte{0x01, 0x01, 0x08, 0x02, 0x02, 0x8a, 0x00}
	e := newTestEndpoint(
		[]byte{Ack},
		[]byte{0x41}, []byte{0x07}, payload, []byte{vs2Checksum(payload)},
	)
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	buf := make([]byte, 2)
	err = eng.Get(e, 0x0800, buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong address")
}

func TestVs2GetTimeoutOnSilence(t *testing.T) {
	e := newTestEndpoint()
	eng, err := New(VS2, testConfig())
	require.NoError(t, err)

	buf := make([]byte, 2)
	assert.ErrorIs(t, eng.Get(e, 0x0800, buf), optolink.ErrTimeout)
}
