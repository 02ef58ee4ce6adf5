// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

// AccessMode declares which directions a command address supports.
type AccessMode uint8

const (
	Read AccessMode = iota
	Write
	ReadWrite
)

// IsRead reports whether the address may be read.
func (sf AccessMode) IsRead() bool {
	return sf == Read || sf == ReadWrite
}

// IsWrite reports whether the address may be written.
func (sf AccessMode) IsWrite() bool {
	return sf == Write || sf == ReadWrite
}

func (sf AccessMode) String() string {
	switch sf {
	case Read:
		return "read"
	case Write:
		return "write"
	case ReadWrite:
		return "read_write"
	}
	return "unknown"
}
