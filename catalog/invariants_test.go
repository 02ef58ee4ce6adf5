// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinkgos/go-optolink/vdata"
)

func allCommands() map[string]*Command {
	all := make(map[string]*Command, len(commandTable)+len(systemCommandTable))
	for name, c := range commandTable {
		all[name] = c
	}
	for name, c := range systemCommandTable {
		all[name] = c
	}
	return all
}

func TestCommandLayoutInvariants(t *testing.T) {
	for name, c := range allCommands() {
		assert.LessOrEqual(t, c.BytePos+c.ByteLen, c.BlockLen, name)
		assert.Greater(t, c.ByteLen, 0, name)

		if c.BitLen > 0 {
			assert.LessOrEqual(t, c.BitPos+c.BitLen, 8, name)
			assert.Equal(t, 1, c.ByteLen, name)
		}

		if c.BlockCount > 1 {
			assert.Zero(t, c.BlockLen%c.BlockCount, name)
		}
	}
}

func TestCommandTypeInvariants(t *testing.T) {
	for name, c := range allCommands() {
		switch c.DataType {
		case vdata.TypeInt, vdata.TypeDouble:
			size, fixed := c.RawType.Size()
			assert.True(t, fixed, name)
			assert.Equal(t, size, c.ByteLen, name)
		case vdata.TypeString, vdata.TypeByteArray,
			vdata.TypeDate, vdata.TypeDateTime, vdata.TypeCircuitTimes,
			vdata.TypeError, vdata.TypeDeviceId, vdata.TypeDeviceIdF0:
			assert.Equal(t, vdata.RawArray, c.RawType, name)
		}

		if c.Mapping != nil {
			assert.Equal(t, vdata.TypeInt, c.DataType, name)
		}
	}
}

func TestDeviceCommandsResolve(t *testing.T) {
	for _, entry := range devices {
		for name := range entry.device.Commands() {
			c, err := Lookup(entry.device, name)
			assert.NoError(t, err)
			assert.NotNil(t, c)
		}
		assert.NotEmpty(t, entry.device.Errors(), entry.device.Name())
	}
}

func TestLookupSearchesSystemFirst(t *testing.T) {
	c, err := Lookup(deviceEcotronic, "device_id")
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x00f8), c.Addr)

	_, err = Lookup(deviceEcotronic, "no_such_command")
	assert.ErrorIs(t, err, ErrUnsupportedCommand)
}
