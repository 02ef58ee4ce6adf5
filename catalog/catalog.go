// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package catalog

import "fmt"

// SystemCommand get a system command by name. System commands work on
// every controller: device identification, current time, error history.
func SystemCommand(name string) (*Command, bool) {
	c, ok := systemCommandTable[name]
	return c, ok
}

// SystemCommands iterate over system commands.
func SystemCommands() map[string]*Command {
	return systemCommandTable
}

// Lookup resolves a command name for the given device. System commands
// and device commands share one namespace, system commands are searched
// first.
func Lookup(device *Device, name string) (*Command, error) {
	if c, ok := SystemCommand(name); ok {
		return c, nil
	}
	if device != nil {
		if c, ok := device.Command(name); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedCommand, name)
}
