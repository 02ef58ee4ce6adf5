// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"fmt"
	"time"
)

// Date is a calendar date as carried by the controller. The wire format
// is the first half of the 8-byte BCD date-time block: century, year in
// century, month and day, all BCD, then the weekday; the three clock
// bytes stay zero.
type Date struct {
	Year  uint16
	Month uint8
	Day   uint8
}

// NewDate validates and builds a date.
func NewDate(year uint16, month, day uint8) (Date, error) {
	d := Date{year, month, day}
	if !d.valid() {
		return Date{}, fmt.Errorf("%w: invalid date: %s", ErrInvalidFormat, d)
	}
	return d, nil
}

func (sf Date) valid() bool {
	t := time.Date(int(sf.Year), time.Month(sf.Month), int(sf.Day), 0, 0, 0, 0, time.UTC)
	return t.Year() == int(sf.Year) && t.Month() == time.Month(sf.Month) && t.Day() == int(sf.Day)
}

// Weekday returns the weekday as a number from 0 (Monday) to 6 (Sunday).
func (sf Date) Weekday() uint8 {
	wd := time.Date(int(sf.Year), time.Month(sf.Month), int(sf.Day), 0, 0, 0, 0, time.UTC).Weekday()
	return uint8((wd + 6) % 7)
}

// ParseDate decodes an 8-byte BCD block as a date, ignoring the clock bytes.
func ParseDate(b []byte) (Date, error) {
	if len(b) != 8 {
		return Date{}, fmt.Errorf("%w: date needs 8 bytes, got %d", ErrInvalidFormat, len(b))
	}
	return NewDate(
		uint16(bcd2dec(b[0]))*100+uint16(bcd2dec(b[1])),
		bcd2dec(b[2]),
		bcd2dec(b[3]),
	)
}

// Bytes encodes the date as the 8-byte BCD block.
func (sf Date) Bytes() []byte {
	return []byte{
		dec2bcd(uint8(sf.Year / 100)),
		dec2bcd(uint8(sf.Year % 100)),
		dec2bcd(sf.Month),
		dec2bcd(sf.Day),
		sf.Weekday(),
		0, 0, 0,
	}
}

// ParseDateString parses "2006-01-02".
func ParseDateString(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return Date{uint16(t.Year()), uint8(t.Month()), uint8(t.Day())}, nil
}

func (sf Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", sf.Year, sf.Month, sf.Day)
}

// DateTime is a wall-clock timestamp as carried by the controller, the
// full 8-byte BCD block: century, year in century, month, day, weekday,
// hour, minute, second.
type DateTime struct {
	Date
	Hour   uint8
	Minute uint8
	Second uint8
}

// NewDateTime validates and builds a date-time.
func NewDateTime(year uint16, month, day, hour, minute, second uint8) (DateTime, error) {
	date, err := NewDate(year, month, day)
	if err != nil {
		return DateTime{}, err
	}
	if hour > 23 || minute > 59 || second > 59 {
		return DateTime{}, fmt.Errorf("%w: invalid time: %02d:%02d:%02d", ErrInvalidFormat, hour, minute, second)
	}
	return DateTime{date, hour, minute, second}, nil
}

// ParseDateTime decodes an 8-byte BCD block. The weekday byte is carried
// by the controller but derived from the date on encode, so it is ignored.
func ParseDateTime(b []byte) (DateTime, error) {
	if len(b) != 8 {
		return DateTime{}, fmt.Errorf("%w: date-time needs 8 bytes, got %d", ErrInvalidFormat, len(b))
	}
	return NewDateTime(
		uint16(bcd2dec(b[0]))*100+uint16(bcd2dec(b[1])),
		bcd2dec(b[2]),
		bcd2dec(b[3]),
		bcd2dec(b[5]),
		bcd2dec(b[6]),
		bcd2dec(b[7]),
	)
}

// Bytes encodes the date-time as the 8-byte BCD block.
func (sf DateTime) Bytes() []byte {
	return []byte{
		dec2bcd(uint8(sf.Year / 100)),
		dec2bcd(uint8(sf.Year % 100)),
		dec2bcd(sf.Month),
		dec2bcd(sf.Day),
		sf.Weekday(),
		dec2bcd(sf.Hour),
		dec2bcd(sf.Minute),
		dec2bcd(sf.Second),
	}
}

// ParseDateTimeString parses "2006-01-02T15:04:05".
func ParseDateTimeString(s string) (DateTime, error) {
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return DateTime{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return DateTime{
		Date{uint16(t.Year()), uint8(t.Month()), uint8(t.Day())},
		uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()),
	}, nil
}

func (sf DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d:%02d", sf.Date, sf.Hour, sf.Minute, sf.Second)
}
