// Copyright 2020 thinkgos (thinkgo@aliyun.com).  All rights reserved.
// Use of this source code is governed by a version 3 of the GNU General
// Public License, license that can be found in the LICENSE file.

package vcontrol

import (
	"encoding/json"
	"strings"

	"github.com/thinkgos/go-optolink/vdata"
)

// OutputValue is a decoded value together with the display unit and enum
// mapping of its command. Error values resolve through the device's
// error-code table.
type OutputValue struct {
	Value   vdata.Value
	Unit    string
	Mapping map[int32]string
}

// resolveError renders an error record through the mapping, falling back
// to the raw code.
func (sf OutputValue) resolveError(er vdata.ErrorRecord) string {
	if text, ok := sf.Mapping[int32(er.Index)]; ok {
		return text
	}
	return er.String()
}

// String renders the value for terminal output, appending the unit.
func (sf OutputValue) String() string {
	var s string
	switch sf.Value.Kind() {
	case vdata.KindEmpty:
		return ""
	case vdata.KindError:
		er, _ := sf.Value.ErrorRecord()
		s = sf.resolveError(er) + " (" + er.Time.String() + ")"
	case vdata.KindArray:
		values, _ := sf.Value.Values()
		parts := make([]string, len(values))
		for i, v := range values {
			parts[i] = OutputValue{Value: v, Mapping: sf.Mapping}.String()
		}
		s = strings.Join(parts, "\n")
	default:
		s = sf.Value.String()
	}

	if sf.Unit != "" {
		s += " " + sf.Unit
	}
	return s
}

type errorOutput struct {
	Index string `json:"index"`
	Time  string `json:"time"`
}

// MarshalJSON renders the value, resolving error records through the
// mapping. Unit and mapping are omitted when absent.
func (sf OutputValue) MarshalJSON() ([]byte, error) {
	var value interface{} = sf.Value

	switch sf.Value.Kind() {
	case vdata.KindError:
		er, _ := sf.Value.ErrorRecord()
		value = errorOutput{sf.resolveError(er), er.Time.String()}
	case vdata.KindArray:
		if values, ok := sf.Value.Values(); ok && len(values) > 0 {
			if _, isError := values[0].ErrorRecord(); isError {
				out := make([]errorOutput, len(values))
				for i, v := range values {
					er, _ := v.ErrorRecord()
					out[i] = errorOutput{sf.resolveError(er), er.Time.String()}
				}
				value = out
			}
		}
	}

	return json.Marshal(struct {
		Value   interface{}      `json:"value"`
		Unit    string           `json:"unit,omitempty"`
		Mapping map[int32]string `json:"mapping,omitempty"`
	}{value, sf.Unit, sf.Mapping})
}
