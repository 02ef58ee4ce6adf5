// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import "fmt"

// ErrorRecord is one entry of the controller's error history: an error
// code index followed by the 8-byte BCD timestamp of the occurrence. The
// index resolves through the device's error-code mapping.
type ErrorRecord struct {
	Index uint8
	Time  DateTime
}

// ParseErrorRecord decodes the 9-byte history record.
func ParseErrorRecord(b []byte) (ErrorRecord, error) {
	if len(b) != 9 {
		return ErrorRecord{}, fmt.Errorf("%w: error record needs 9 bytes, got %d", ErrInvalidFormat, len(b))
	}
	t, err := ParseDateTime(b[1:])
	if err != nil {
		return ErrorRecord{}, err
	}
	return ErrorRecord{Index: b[0], Time: t}, nil
}

// Bytes encodes the record back into its 9-byte wire form.
func (sf ErrorRecord) Bytes() []byte {
	return append([]byte{sf.Index}, sf.Time.Bytes()...)
}

func (sf ErrorRecord) String() string {
	return fmt.Sprintf("%s: error %02X", sf.Time, sf.Index)
}
