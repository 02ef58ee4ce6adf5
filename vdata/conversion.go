// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vdata

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// conversion discriminant. The set is closed, the catalog references
// conversions by these variants only.
type conversionKind uint8

const (
	convNone conversionKind = iota
	convDiv2
	convDiv5
	convDiv10
	convDiv100
	convDiv1000
	convMul2
	convMul5
	convMul10
	convMul100
	convMul1000
	convMulOffset
	convSecToMinute
	convSecToHour
	convHexByteToAsciiByte
	convHexByteToUtf16Byte
	convHexByteToDecimalByte
	convHexByteToVersion
	convFixedStringTerminalZeroes
	convDateBCD
	convDateTimeBCD
	convDayMonthBCD
	convDayToDate
	convRotateBytes
	convIPAddress
	// declared in the vendor data but carrying no decode logic; applying
	// one fails with ErrUnsupportedConversion
	convEstrich
	convLastBurnerCheck
	convLastCheckInterval
	convVitocomNV
	convDatenpunktAddr
	convKesselfolge
	convPhoneToBCD
	convTime53
)

// Conversion is one member of the closed conversion set of the catalog.
type Conversion struct {
	kind   conversionKind
	factor float64
	offset float64
}

// The conversion set. MulOffset is the only parameterized member.
var (
	Div2                      = Conversion{kind: convDiv2, factor: 2}
	Div5                      = Conversion{kind: convDiv5, factor: 5}
	Div10                     = Conversion{kind: convDiv10, factor: 10}
	Div100                    = Conversion{kind: convDiv100, factor: 100}
	Div1000                   = Conversion{kind: convDiv1000, factor: 1000}
	Mul2                      = Conversion{kind: convMul2, factor: 2}
	Mul5                      = Conversion{kind: convMul5, factor: 5}
	Mul10                     = Conversion{kind: convMul10, factor: 10}
	Mul100                    = Conversion{kind: convMul100, factor: 100}
	Mul1000                   = Conversion{kind: convMul1000, factor: 1000}
	SecToMinute               = Conversion{kind: convSecToMinute, factor: 60}
	SecToHour                 = Conversion{kind: convSecToHour, factor: 3600}
	HexByteToAsciiByte        = Conversion{kind: convHexByteToAsciiByte}
	HexByteToUtf16Byte        = Conversion{kind: convHexByteToUtf16Byte}
	HexByteToDecimalByte      = Conversion{kind: convHexByteToDecimalByte}
	HexByteToVersion          = Conversion{kind: convHexByteToVersion}
	FixedStringTerminalZeroes = Conversion{kind: convFixedStringTerminalZeroes}
	DateBCD                   = Conversion{kind: convDateBCD}
	DateTimeBCD               = Conversion{kind: convDateTimeBCD}
	DayMonthBCD               = Conversion{kind: convDayMonthBCD}
	DayToDate                 = Conversion{kind: convDayToDate}
	RotateBytes               = Conversion{kind: convRotateBytes}
	IPAddress                 = Conversion{kind: convIPAddress}
	Estrich                   = Conversion{kind: convEstrich}
	LastBurnerCheck           = Conversion{kind: convLastBurnerCheck}
	LastCheckInterval         = Conversion{kind: convLastCheckInterval}
	VitocomNV                 = Conversion{kind: convVitocomNV}
	DatenpunktAddr            = Conversion{kind: convDatenpunktAddr}
	Kesselfolge               = Conversion{kind: convKesselfolge}
	PhoneToBCD                = Conversion{kind: convPhoneToBCD}
	Time53                    = Conversion{kind: convTime53}
)

// MulOffset builds the parameterized scaling conversion x*factor+offset.
func MulOffset(factor, offset float64) Conversion {
	return Conversion{kind: convMulOffset, factor: factor, offset: offset}
}

var conversionNames = map[conversionKind]string{
	convNone:                      "none",
	convDiv2:                      "div2",
	convDiv5:                      "div5",
	convDiv10:                     "div10",
	convDiv100:                    "div100",
	convDiv1000:                   "div1000",
	convMul2:                      "mul2",
	convMul5:                      "mul5",
	convMul10:                     "mul10",
	convMul100:                    "mul100",
	convMul1000:                   "mul1000",
	convMulOffset:                 "mul_offset",
	convSecToMinute:               "sec_to_minute",
	convSecToHour:                 "sec_to_hour",
	convHexByteToAsciiByte:        "hex_byte_to_ascii_byte",
	convHexByteToUtf16Byte:        "hex_byte_to_utf16_byte",
	convHexByteToDecimalByte:      "hex_byte_to_decimal_byte",
	convHexByteToVersion:          "hex_byte_to_version",
	convFixedStringTerminalZeroes: "fixed_string_terminal_zeroes",
	convDateBCD:                   "date_bcd",
	convDateTimeBCD:               "date_time_bcd",
	convDayMonthBCD:               "day_month_bcd",
	convDayToDate:                 "day_to_date",
	convRotateBytes:               "rotate_bytes",
	convIPAddress:                 "ip_address",
	convEstrich:                   "estrich",
	convLastBurnerCheck:           "last_burner_check",
	convLastCheckInterval:         "last_check_interval",
	convVitocomNV:                 "vitocom_nv",
	convDatenpunktAddr:            "datenpunkt_addr",
	convKesselfolge:               "kesselfolge",
	convPhoneToBCD:                "phone_to_bcd",
	convTime53:                    "time53",
}

func (sf Conversion) String() string {
	if sf.kind == convMulOffset {
		return fmt.Sprintf("mul_offset{%v,%v}", sf.factor, sf.offset)
	}
	return conversionNames[sf.kind]
}

func (sf Conversion) unsupported(v Value) error {
	return fmt.Errorf("%w: %s not applicable to %s value", ErrUnsupportedConversion, sf, v.Kind())
}

// scaledDiv divides a numeric value. The value kind is fixed by the
// command's data type, so Int inputs divide with integer arithmetic and
// stay Int.
func scaledDiv(v Value, divisor float64) (Value, bool) {
	if n, ok := v.Int(); ok {
		return Int(n / int64(divisor)), true
	}
	if f, ok := v.Double(); ok {
		return Double(f / divisor), true
	}
	return Value{}, false
}

// scaledMul multiplies a numeric value, preserving the kind.
func scaledMul(v Value, factor float64) (Value, bool) {
	if n, ok := v.Int(); ok {
		return Int(n * int64(factor)), true
	}
	if f, ok := v.Double(); ok {
		return Double(f * factor), true
	}
	return Value{}, false
}

// Apply converts a decoded value into its semantic form.
func (sf Conversion) Apply(v Value) (Value, error) {
	switch sf.kind {
	case convNone:
		return v, nil

	case convDiv2, convDiv5, convDiv10, convDiv100, convDiv1000,
		convSecToMinute, convSecToHour:
		if out, ok := scaledDiv(v, sf.factor); ok {
			return out, nil
		}

	case convMul2, convMul5, convMul10, convMul100, convMul1000:
		if out, ok := scaledMul(v, sf.factor); ok {
			return out, nil
		}

	case convMulOffset:
		if f, ok := v.Number(); ok {
			return Double(f*sf.factor + sf.offset), nil
		}

	case convHexByteToAsciiByte:
		if b, ok := v.ByteSlice(); ok {
			var sb strings.Builder
			for _, c := range b {
				if c != '0' {
					sb.WriteByte(c)
				}
			}
			return String(sb.String()), nil
		}

	case convHexByteToUtf16Byte:
		if b, ok := v.ByteSlice(); ok && len(b)%2 == 0 {
			units := make([]uint16, len(b)/2)
			for i := range units {
				units[i] = uint16(b[2*i]) | uint16(b[2*i+1])<<8
			}
			return String(strings.TrimRight(string(utf16.Decode(units)), "\x00")), nil
		}

	case convHexByteToDecimalByte:
		if b, ok := v.ByteSlice(); ok {
			var sb strings.Builder
			for _, c := range b {
				sb.WriteString(strconv.Itoa(int(c)))
			}
			return String(sb.String()), nil
		}

	case convHexByteToVersion:
		if b, ok := v.ByteSlice(); ok {
			parts := make([]string, len(b))
			for i, c := range b {
				parts[i] = strconv.Itoa(int(c))
			}
			return String(strings.Join(parts, ".")), nil
		}

	case convFixedStringTerminalZeroes:
		if b, ok := v.ByteSlice(); ok {
			return String(strings.TrimRight(string(b), "\x00")), nil
		}
		if s, ok := v.Str(); ok {
			return String(strings.TrimRight(s, "\x00")), nil
		}

	case convDateBCD:
		if d, ok := v.Date(); ok {
			return DateValue(d), nil
		}
		if t, ok := v.DateTime(); ok {
			return DateValue(t.Date), nil
		}

	case convDateTimeBCD:
		if _, ok := v.DateTime(); ok {
			return v, nil
		}

	case convDayMonthBCD:
		if b, ok := v.ByteSlice(); ok && len(b) == 2 {
			day, month := bcd2dec(b[0]), bcd2dec(b[1])
			if day < 1 || day > 31 || month < 1 || month > 12 {
				return Value{}, fmt.Errorf("%w: invalid day/month %02X %02X", ErrInvalidFormat, b[0], b[1])
			}
			return String(fmt.Sprintf("%02d.%02d", day, month)), nil
		}

	case convDayToDate:
		if n, ok := v.Int(); ok {
			t := time.Unix(n*86400, 0).UTC()
			return DateValue(Date{uint16(t.Year()), uint8(t.Month()), uint8(t.Day())}), nil
		}

	case convRotateBytes:
		if b, ok := v.ByteSlice(); ok {
			out := make([]byte, len(b))
			for i, c := range b {
				out[len(b)-1-i] = c
			}
			return ByteArray(out), nil
		}
		if _, ok := v.Int(); ok {
			return v, nil
		}

	case convIPAddress:
		if b, ok := v.ByteSlice(); ok && len(b) == 4 {
			return String(net.IP(b).String()), nil
		}

	case convEstrich, convLastBurnerCheck, convLastCheckInterval, convVitocomNV,
		convDatenpunktAddr, convKesselfolge, convPhoneToBCD, convTime53:
		return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedConversion, sf)
	}

	return Value{}, sf.unsupported(v)
}

// Invert converts a semantic value back for encoding. Only the
// conversions of writable commands carry an inverse.
func (sf Conversion) Invert(v Value) (Value, error) {
	switch sf.kind {
	case convNone:
		return v, nil

	case convDiv2, convDiv5, convDiv10, convDiv100, convDiv1000,
		convSecToMinute, convSecToHour:
		if out, ok := scaledMul(v, sf.factor); ok {
			return out, nil
		}

	case convMul2, convMul5, convMul10, convMul100, convMul1000:
		if out, ok := scaledDiv(v, sf.factor); ok {
			return out, nil
		}

	case convMulOffset:
		if f, ok := v.Number(); ok {
			return Double((f - sf.offset) / sf.factor), nil
		}

	case convFixedStringTerminalZeroes:
		// padding to the fixed width happens at the encode stage
		if _, ok := v.Str(); ok {
			return v, nil
		}

	case convDateBCD:
		if _, ok := v.Date(); ok {
			return v, nil
		}

	case convDateTimeBCD:
		if _, ok := v.DateTime(); ok {
			return v, nil
		}

	case convDayMonthBCD:
		if s, ok := v.Str(); ok {
			parts := strings.SplitN(s, ".", 2)
			if len(parts) == 2 {
				day, err1 := strconv.Atoi(parts[0])
				month, err2 := strconv.Atoi(parts[1])
				if err1 == nil && err2 == nil && day >= 1 && day <= 31 && month >= 1 && month <= 12 {
					return ByteArray([]byte{dec2bcd(uint8(day)), dec2bcd(uint8(month))}), nil
				}
			}
			return Value{}, fmt.Errorf("%w: invalid day.month %q", ErrInvalidArgument, s)
		}

	case convDayToDate:
		if d, ok := v.Date(); ok {
			t := time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
			return Int(t.Unix() / 86400), nil
		}

	case convRotateBytes:
		return sf.Apply(v)

	case convIPAddress:
		if s, ok := v.Str(); ok {
			ip := net.ParseIP(s)
			if ip4 := ip.To4(); ip4 != nil {
				return ByteArray(ip4), nil
			}
			return Value{}, fmt.Errorf("%w: invalid IPv4 address %q", ErrInvalidArgument, s)
		}

	case convEstrich, convLastBurnerCheck, convLastCheckInterval, convVitocomNV,
		convDatenpunktAddr, convKesselfolge, convPhoneToBCD, convTime53,
		convHexByteToAsciiByte, convHexByteToUtf16Byte, convHexByteToDecimalByte,
		convHexByteToVersion:
		return Value{}, fmt.Errorf("%w: %s has no inverse", ErrUnsupportedConversion, sf)
	}

	return Value{}, sf.unsupported(v)
}
