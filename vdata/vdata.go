// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

// Package vdata converts between raw controller byte blocks and typed
// values: bit and byte slicing, raw integer widening, value conversions,
// enum mappings and the controller's structured types (dates, weekly
// schedules, error records, device identifiers).
package vdata

import "errors"

// codec errors. All of them are non-fatal for a session, the caller may
// retry with different input.
var (
	// ErrInvalidArgument encoding failed: type mismatch or out of bounds.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownEnumVariant a decoded integer has no mapping entry.
	ErrUnknownEnumVariant = errors.New("unknown enum variant")
	// ErrInvalidFormat a structured decode produced an impossible value.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedConversion the conversion is declared in the catalog
	// but carries no decode logic.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// bcd2dec maps a number from binary-coded-decimal representation to
// decimal, e.g. 0x15 becomes 15.
func bcd2dec(b byte) uint8 {
	return b>>4*10 + b&0x0f
}

// dec2bcd maps a number from decimal representation to binary-coded
// decimal, e.g. 15 becomes 0x15.
func dec2bcd(d uint8) byte {
	return d/10<<4 | d%10
}
