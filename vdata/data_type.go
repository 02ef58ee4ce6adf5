// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"fmt"
	"math"
	"strings"
)

// DataType is the semantic type of a command value, driving the decoder
// stage that runs after slicing.
type DataType uint8

const (
	TypeInt DataType = iota
	TypeDouble
	TypeString
	TypeByteArray
	TypeDate
	TypeDateTime
	TypeCircuitTimes
	TypeError
	TypeDeviceId
	TypeDeviceIdF0
)

func (sf DataType) String() string {
	switch sf {
	case TypeInt:
		return "int"
	case TypeDouble:
		return "double"
	case TypeString:
		return "string"
	case TypeByteArray:
		return "byte_array"
	case TypeDate:
		return "date"
	case TypeDateTime:
		return "date_time"
	case TypeCircuitTimes:
		return "circuit_times"
	case TypeError:
		return "error"
	case TypeDeviceId:
		return "device_id"
	case TypeDeviceIdF0:
		return "device_id_f0"
	}
	return "unknown"
}

// IsNumeric reports whether the type decodes through a raw integer width.
func (sf DataType) IsNumeric() bool {
	return sf == TypeInt || sf == TypeDouble
}

// Decode runs the raw-to-primitive, conversion and mapping stages over an
// already sliced value region. A region of all 0xFF decodes to Empty.
func (sf DataType) Decode(raw RawType, region []byte, conv Conversion, mapping map[int32]string) (Value, error) {
	if len(region) == 0 {
		return Value{}, fmt.Errorf("%w: empty value region", ErrInvalidFormat)
	}
	empty := true
	for _, b := range region {
		if b != 0xff {
			empty = false
			break
		}
	}
	if empty {
		return Empty(), nil
	}

	var v Value
	switch sf {
	case TypeDate:
		d, err := ParseDate(region)
		if err != nil {
			return Value{}, err
		}
		v = DateValue(d)
	case TypeDateTime:
		t, err := ParseDateTime(region)
		if err != nil {
			return Value{}, err
		}
		v = DateTimeValue(t)
	case TypeCircuitTimes:
		ct, err := ParseCircuitTimes(region)
		if err != nil {
			return Value{}, err
		}
		v = CircuitTimesValue(ct)
	case TypeError:
		er, err := ParseErrorRecord(region)
		if err != nil {
			return Value{}, err
		}
		v = ErrorValue(er)
	case TypeDeviceId:
		id, err := ParseDeviceId(region)
		if err != nil {
			return Value{}, err
		}
		v = DeviceIdValue(id)
	case TypeDeviceIdF0:
		f0, err := ParseDeviceIdF0(region)
		if err != nil {
			return Value{}, err
		}
		v = DeviceIdF0Value(f0)
	case TypeString:
		s := string(region)
		if i := strings.IndexByte(s, 0); i >= 0 {
			s = s[:i]
		}
		v = String(s)
	case TypeByteArray:
		v = ByteArray(append([]byte(nil), region...))
	case TypeInt, TypeDouble:
		size, ok := raw.Size()
		if !ok {
			return Value{}, fmt.Errorf("%w: numeric type over array raw type", ErrInvalidFormat)
		}
		if len(region) < size {
			return Value{}, fmt.Errorf("%w: region %d short of %s", ErrInvalidFormat, len(region), raw)
		}
		n := raw.Widen(region[:size])
		if sf == TypeDouble {
			v = Double(float64(n))
		} else {
			v = Int(n)
		}
	default:
		return Value{}, fmt.Errorf("%w: data type %d", ErrInvalidFormat, sf)
	}

	v, err := conv.Apply(v)
	if err != nil {
		return Value{}, err
	}

	if mapping != nil {
		if n, ok := v.Int(); ok {
			text, ok := mapping[int32(n)]
			if !ok {
				return Value{}, fmt.Errorf("%w: no enum mapping found for %d", ErrUnknownEnumVariant, n)
			}
			return String(text), nil
		}
	}
	return v, nil
}

// Encode validates the input and produces the wire bytes of the value
// region: mapping reversal, inverse conversion, then little-endian
// narrowing or the structured byte form. byteLen is the region width.
func (sf DataType) Encode(v Value, raw RawType, byteLen int, conv Conversion, mapping map[int32]string) ([]byte, error) {
	if mapping != nil {
		s, ok := v.Str()
		if !ok {
			return nil, fmt.Errorf("%w: expected mapped string, found %s", ErrInvalidArgument, v.Kind())
		}
		for n, text := range mapping {
			if text == s {
				v = Int(int64(n))
			}
		}
		if _, ok := v.Int(); !ok {
			return nil, fmt.Errorf("%w: no mapping for %q", ErrInvalidArgument, s)
		}
	}

	v, err := conv.Invert(v)
	if err != nil {
		return nil, err
	}

	switch sf {
	case TypeInt, TypeDouble:
		f, ok := v.Number()
		if !ok {
			return nil, fmt.Errorf("%w: expected number, found %s", ErrInvalidArgument, v.Kind())
		}
		if _, fixed := raw.Size(); !fixed {
			return nil, fmt.Errorf("%w: numeric type over array raw type", ErrInvalidArgument)
		}
		return raw.Narrow(int64(math.Round(f))), nil

	case TypeString:
		s, ok := v.Str()
		if !ok {
			return nil, fmt.Errorf("%w: expected string, found %s", ErrInvalidArgument, v.Kind())
		}
		if len(s) > byteLen {
			return nil, fmt.Errorf("%w: string longer than %d bytes", ErrInvalidArgument, byteLen)
		}
		b := make([]byte, byteLen)
		copy(b, s)
		return b, nil

	case TypeByteArray:
		b, ok := v.ByteSlice()
		if !ok {
			return nil, fmt.Errorf("%w: expected byte array, found %s", ErrInvalidArgument, v.Kind())
		}
		if len(b) != byteLen {
			return nil, fmt.Errorf("%w: expected %d bytes, found %d", ErrInvalidArgument, byteLen, len(b))
		}
		return append([]byte(nil), b...), nil

	case TypeDate:
		if d, ok := v.Date(); ok {
			return d.Bytes(), nil
		}
		if s, ok := v.Str(); ok {
			d, err := ParseDateString(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			return d.Bytes(), nil
		}
		return nil, fmt.Errorf("%w: expected date, found %s", ErrInvalidArgument, v.Kind())

	case TypeDateTime:
		if t, ok := v.DateTime(); ok {
			return t.Bytes(), nil
		}
		if s, ok := v.Str(); ok {
			t, err := ParseDateTimeString(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
			}
			return t.Bytes(), nil
		}
		return nil, fmt.Errorf("%w: expected date-time, found %s", ErrInvalidArgument, v.Kind())

	case TypeCircuitTimes:
		ct, ok := v.CircuitTimes()
		if !ok {
			return nil, fmt.Errorf("%w: expected circuit times, found %s", ErrInvalidArgument, v.Kind())
		}
		return ct.Bytes(), nil

	case TypeError, TypeDeviceId, TypeDeviceIdF0:
		return nil, fmt.Errorf("%w: %s is read only", ErrInvalidArgument, sf)
	}
	return nil, fmt.Errorf("%w: data type %d", ErrInvalidArgument, sf)
}
