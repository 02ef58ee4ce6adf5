// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"fmt"
	"strings"
)

// A circuit timer byte packs a wall-clock time as hhhhhmmm: hour in the
// five high bits, tens of minutes in the three low bits. 0xFF marks an
// unused span endpoint.
const unusedSlot = 0xff

// ClockTime is a wall-clock time with 10-minute granularity.
type ClockTime struct {
	Hour   uint8
	Minute uint8
}

// ParseClockTime decodes a packed timer byte. ok is false for the 0xFF
// unused marker.
func ParseClockTime(b byte) (ClockTime, bool, error) {
	if b == unusedSlot {
		return ClockTime{}, false, nil
	}
	t := ClockTime{b >> 3, (b & 0x07) * 10}
	if t.Hour > 23 || t.Minute > 50 {
		return ClockTime{}, false, fmt.Errorf("%w: invalid timer byte 0x%02X", ErrInvalidFormat, b)
	}
	return t, true, nil
}

// Value encodes the time back into the packed timer byte.
func (sf ClockTime) Value() byte {
	return sf.Hour<<3 | sf.Minute/10
}

func (sf ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", sf.Hour, sf.Minute)
}

// TimeSpan is one switching window within a day.
type TimeSpan struct {
	From ClockTime `json:"from"`
	To   ClockTime `json:"to"`
}

func (sf TimeSpan) String() string {
	return fmt.Sprintf("%s - %s", sf.From, sf.To)
}

// CircuitDay holds the up to four spans of one day, used slots first.
type CircuitDay []TimeSpan

// ParseCircuitDay decodes the 8-byte day record. Used spans must precede
// unused slots.
func ParseCircuitDay(b []byte) (CircuitDay, error) {
	if len(b) != 8 {
		return nil, fmt.Errorf("%w: circuit day needs 8 bytes, got %d", ErrInvalidFormat, len(b))
	}
	day := make(CircuitDay, 0, 4)
	done := false
	for i := 0; i < 8; i += 2 {
		from, okFrom, err := ParseClockTime(b[i])
		if err != nil {
			return nil, err
		}
		to, okTo, err := ParseClockTime(b[i+1])
		if err != nil {
			return nil, err
		}
		if okFrom != okTo {
			return nil, fmt.Errorf("%w: half open span at slot %d", ErrInvalidFormat, i/2)
		}
		if !okFrom {
			done = true
			continue
		}
		if done {
			return nil, fmt.Errorf("%w: used span after unused slot %d", ErrInvalidFormat, i/2)
		}
		day = append(day, TimeSpan{from, to})
	}
	return day, nil
}

// Bytes encodes the day back into the 8-byte record, unused slots trailing.
func (sf CircuitDay) Bytes() []byte {
	b := []byte{unusedSlot, unusedSlot, unusedSlot, unusedSlot, unusedSlot, unusedSlot, unusedSlot, unusedSlot}
	for i, span := range sf {
		if i >= 4 {
			break
		}
		b[2*i] = span.From.Value()
		b[2*i+1] = span.To.Value()
	}
	return b
}

// CircuitTimes is a weekly switching schedule, Monday first. The wire
// format is 56 bytes, 7 day records of 8 bytes each.
type CircuitTimes struct {
	Mon CircuitDay `json:"mon"`
	Tue CircuitDay `json:"tue"`
	Wed CircuitDay `json:"wed"`
	Thu CircuitDay `json:"thu"`
	Fri CircuitDay `json:"fri"`
	Sat CircuitDay `json:"sat"`
	Sun CircuitDay `json:"sun"`
}

// ParseCircuitTimes decodes the 56-byte weekly schedule.
func ParseCircuitTimes(b []byte) (*CircuitTimes, error) {
	if len(b) != 56 {
		return nil, fmt.Errorf("%w: circuit times need 56 bytes, got %d", ErrInvalidFormat, len(b))
	}
	var ct CircuitTimes
	for i, day := range []*CircuitDay{&ct.Mon, &ct.Tue, &ct.Wed, &ct.Thu, &ct.Fri, &ct.Sat, &ct.Sun} {
		d, err := ParseCircuitDay(b[8*i : 8*i+8])
		if err != nil {
			return nil, err
		}
		*day = d
	}
	return &ct, nil
}

// Bytes encodes the weekly schedule into its 56-byte wire form.
func (sf *CircuitTimes) Bytes() []byte {
	b := make([]byte, 0, 56)
	for _, day := range []CircuitDay{sf.Mon, sf.Tue, sf.Wed, sf.Thu, sf.Fri, sf.Sat, sf.Sun} {
		b = append(b, day.Bytes()...)
	}
	return b
}

func (sf *CircuitTimes) String() string {
	var sb strings.Builder
	names := []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun"}
	for i, day := range []CircuitDay{sf.Mon, sf.Tue, sf.Wed, sf.Thu, sf.Fri, sf.Sat, sf.Sun} {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(names[i])
		sb.WriteString(":")
		for _, span := range day {
			sb.WriteString(" ")
			sb.WriteString(span.String())
		}
	}
	return sb.String()
}
