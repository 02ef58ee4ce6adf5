// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the Value union.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindInt
	KindDouble
	KindString
	KindByteArray
	KindArray
	KindDate
	KindDateTime
	KindCircuitTimes
	KindError
	KindDeviceId
	KindDeviceIdF0
)

func (sf Kind) String() string {
	switch sf {
	case KindEmpty:
		return "empty"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindByteArray:
		return "byte_array"
	case KindArray:
		return "array"
	case KindDate:
		return "date"
	case KindDateTime:
		return "date_time"
	case KindCircuitTimes:
		return "circuit_times"
	case KindError:
		return "error"
	case KindDeviceId:
		return "device_id"
	case KindDeviceIdF0:
		return "device_id_f0"
	}
	return "unknown"
}

// Value is the tagged union produced by decoding and consumed by
// encoding. The zero Value is Empty, the controller's all-0xFF
// "not present" sentinel.
type Value struct {
	kind Kind

	num  int64
	fnum float64
	str  string
	raw  []byte
	arr  []Value
	dt   DateTime
	ct   *CircuitTimes
	er   ErrorRecord
	id   DeviceId
	f0   DeviceIdF0
}

// Empty the "not present" value.
func Empty() Value { return Value{} }

// Int wraps an integer.
func Int(n int64) Value { return Value{kind: KindInt, num: n} }

// Double wraps a float.
func Double(f float64) Value { return Value{kind: KindDouble, fnum: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// ByteArray wraps a raw byte slice.
func ByteArray(b []byte) Value { return Value{kind: KindByteArray, raw: b} }

// Array wraps a slice of values, one per block-count record.
func Array(vs []Value) Value { return Value{kind: KindArray, arr: vs} }

// DateValue wraps a date.
func DateValue(d Date) Value { return Value{kind: KindDate, dt: DateTime{Date: d}} }

// DateTimeValue wraps a date-time.
func DateTimeValue(t DateTime) Value { return Value{kind: KindDateTime, dt: t} }

// CircuitTimesValue wraps a weekly schedule.
func CircuitTimesValue(ct *CircuitTimes) Value { return Value{kind: KindCircuitTimes, ct: ct} }

// ErrorValue wraps an error-history record.
func ErrorValue(er ErrorRecord) Value { return Value{kind: KindError, er: er} }

// DeviceIdValue wraps a device identifier.
func DeviceIdValue(id DeviceId) Value { return Value{kind: KindDeviceId, id: id} }

// DeviceIdF0Value wraps an F0 identifier.
func DeviceIdF0Value(f0 DeviceIdF0) Value { return Value{kind: KindDeviceIdF0, f0: f0} }

// Kind return the union discriminant.
func (this Value) Kind() Kind { return this.kind }

// IsEmpty reports the "not present" sentinel.
func (this Value) IsEmpty() bool { return this.kind == KindEmpty }

// Int return the integer payload.
func (this Value) Int() (int64, bool) { return this.num, this.kind == KindInt }

// Double return the float payload.
func (this Value) Double() (float64, bool) { return this.fnum, this.kind == KindDouble }

// Number widens Int or Double to a float.
func (this Value) Number() (float64, bool) {
	switch this.kind {
	case KindInt:
		return float64(this.num), true
	case KindDouble:
		return this.fnum, true
	}
	return 0, false
}

// Str return the string payload.
func (this Value) Str() (string, bool) { return this.str, this.kind == KindString }

// ByteSlice return the raw byte payload.
func (this Value) ByteSlice() ([]byte, bool) { return this.raw, this.kind == KindByteArray }

// Values return the array payload.
func (this Value) Values() ([]Value, bool) { return this.arr, this.kind == KindArray }

// Date return the date payload.
func (this Value) Date() (Date, bool) { return this.dt.Date, this.kind == KindDate }

// DateTime return the date-time payload.
func (this Value) DateTime() (DateTime, bool) { return this.dt, this.kind == KindDateTime }

// CircuitTimes return the weekly schedule payload.
func (this Value) CircuitTimes() (*CircuitTimes, bool) { return this.ct, this.kind == KindCircuitTimes }

// ErrorRecord return the error-history payload.
func (this Value) ErrorRecord() (ErrorRecord, bool) { return this.er, this.kind == KindError }

// DeviceId return the identifier payload.
func (this Value) DeviceId() (DeviceId, bool) { return this.id, this.kind == KindDeviceId }

// DeviceIdF0 return the F0 identifier payload.
func (this Value) DeviceIdF0() (DeviceIdF0, bool) { return this.f0, this.kind == KindDeviceIdF0 }

// Parse interprets CLI input: integer, then float, then plain string.
func Parse(s string) Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Double(f)
	}
	return String(s)
}

// String renders the value for terminal output. Empty renders as nothing.
func (this Value) String() string {
	switch this.kind {
	case KindEmpty:
		return ""
	case KindInt:
		return strconv.FormatInt(this.num, 10)
	case KindDouble:
		return strconv.FormatFloat(this.fnum, 'f', -1, 64)
	case KindString:
		return this.str
	case KindByteArray:
		return fmt.Sprintf("% X", this.raw)
	case KindArray:
		parts := make([]string, len(this.arr))
		for i, v := range this.arr {
			parts[i] = v.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindDate:
		return this.dt.Date.String()
	case KindDateTime:
		return this.dt.String()
	case KindCircuitTimes:
		return this.ct.String()
	case KindError:
		return this.er.String()
	case KindDeviceId:
		return this.id.String()
	case KindDeviceIdF0:
		return this.f0.String()
	}
	return "unknown"
}

// MarshalJSON renders the value as a JSON scalar or structure.
func (this Value) MarshalJSON() ([]byte, error) {
	switch this.kind {
	case KindEmpty:
		return []byte("null"), nil
	case KindInt:
		return json.Marshal(this.num)
	case KindDouble:
		return json.Marshal(this.fnum)
	case KindString:
		return json.Marshal(this.str)
	case KindByteArray:
		ns := make([]uint16, len(this.raw))
		for i, b := range this.raw {
			ns[i] = uint16(b)
		}
		return json.Marshal(ns)
	case KindArray:
		return json.Marshal(this.arr)
	case KindDate:
		return json.Marshal(this.dt.Date.String())
	case KindDateTime:
		return json.Marshal(this.dt.String())
	case KindCircuitTimes:
		return json.Marshal(this.ct)
	case KindError:
		return json.Marshal(struct {
			Index uint8  `json:"index"`
			Time  string `json:"time"`
		}{this.er.Index, this.er.Time.String()})
	case KindDeviceId:
		return json.Marshal(struct {
			Id                 uint16 `json:"id"`
			HardwareIndex      uint8  `json:"hardware_index"`
			SoftwareIndex      uint8  `json:"software_index"`
			ProtocolVersionLda uint8  `json:"protocol_version_lda"`
			ProtocolVersionRda uint8  `json:"protocol_version_rda"`
			DeveloperVersion   uint16 `json:"developer_version"`
		}{this.id.Id, this.id.HardwareIndex, this.id.SoftwareIndex,
			this.id.ProtocolVersionLda, this.id.ProtocolVersionRda, this.id.DeveloperVersion})
	case KindDeviceIdF0:
		return json.Marshal(uint16(this.f0))
	}
	return nil, fmt.Errorf("%w: kind %d", ErrInvalidArgument, this.kind)
}

// UnmarshalJSON accepts JSON scalars, byte arrays and weekly schedules.
func (this *Value) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*this = Empty()
		return nil
	}
	switch {
	case strings.HasPrefix(s, `"`):
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*this = String(str)
	case strings.HasPrefix(s, "["):
		var ns []int64
		if err := json.Unmarshal(b, &ns); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		raw := make([]byte, len(ns))
		for i, n := range ns {
			if n < 0 || n > 255 {
				return fmt.Errorf("%w: byte value %d out of range", ErrInvalidArgument, n)
			}
			raw[i] = byte(n)
		}
		*this = ByteArray(raw)
	case strings.HasPrefix(s, "{"):
		var ct CircuitTimes
		if err := json.Unmarshal(b, &ct); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		*this = CircuitTimesValue(&ct)
	default:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			*this = Int(n)
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		*this = Double(f)
	}
	return nil
}
