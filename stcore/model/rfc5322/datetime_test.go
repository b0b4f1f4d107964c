/*
   Copyright 2026 The sectxt Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package rfc5322_test

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/model/rfc5322"
)

func TestParseDateTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Valid inputs
		{"full form", "Thu, 31 Dec 2026 18:37:07 -0800", false},
		{"no day of week", "31 Dec 2026 18:37:07 -0800", false},
		{"positive offset", "Mon, 02 Jan 2006 15:04:05 +0700", false},
		{"gmt zone", "Thu, 31 Dec 2026 18:37:07 GMT", false},
		{"two digit year", "31 Dec 99 18:37:07 +0000", false},
		{"leading whitespace", " Thu, 31 Dec 2026 18:37:07 -0800", false},

		// Invalid inputs
		{"empty", "", true},
		{"missing zone", "Thu, 31 Dec 2026 18:37:07", true},
		{"date only", "31 Dec 2026", true},
		{"iso 8601", "2026-12-31T18:37:07-08:00", true},
		{"unix timestamp", "1798764000", true},
		{"garbage", "soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rfc5322.ParseDateTime(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDateTime() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && got.IsZero() {
				t.Error("ParseDateTime() returned zero value without error")
			}
		})
	}
}

func TestParseDateTime_PreservesOffset(t *testing.T) {
	dt, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}

	_, offset := dt.Time.Zone()
	if offset != -8*60*60 {
		t.Errorf("offset = %d seconds, want %d", offset, -8*60*60)
	}
	if dt.Time.Hour() != 18 {
		t.Errorf("wall-clock hour = %d, want 18", dt.Time.Hour())
	}
}

func TestParseDateTime_TwoDigitYear(t *testing.T) {
	dt, err := rfc5322.ParseDateTime("31 Dec 99 18:37:07 +0000")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	if dt.Time.Year() != 1999 {
		t.Errorf("year = %d, want 1999", dt.Time.Year())
	}
}

func TestDateTime_String(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full form unchanged", "Thu, 31 Dec 2026 18:37:07 -0800", "Thu, 31 Dec 2026 18:37:07 -0800"},
		{"day of week added", "31 Dec 2026 18:37:07 -0800", "Thu, 31 Dec 2026 18:37:07 -0800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dt, err := rfc5322.ParseDateTime(tt.input)
			if err != nil {
				t.Fatalf("ParseDateTime() error = %v", err)
			}
			if got := dt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("zero renders empty", func(t *testing.T) {
		var dt rfc5322.DateTime
		if got := dt.String(); got != "" {
			t.Errorf("String() = %q, want empty", got)
		}
	})
}

func TestDateTime_StringRoundTrip(t *testing.T) {
	original, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}

	reparsed, err := rfc5322.ParseDateTime(original.String())
	if err != nil {
		t.Fatalf("ParseDateTime(String()) error = %v", err)
	}

	if !reparsed.Equal(original) {
		t.Errorf("round trip through String() lost information: %v != %v", reparsed, original)
	}
}

func TestDateTime_Equal(t *testing.T) {
	base, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	sameInstantUTC, err := rfc5322.ParseDateTime("Fri, 01 Jan 2027 02:37:07 +0000")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	later, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:08 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}

	if !base.Equal(base) {
		t.Error("Equal() should be reflexive")
	}
	if base.Equal(sameInstantUTC) {
		t.Error("same instant at a different offset should compare unequal")
	}
	if !base.Time.Equal(sameInstantUTC.Time) {
		t.Error("the two timestamps should denote the same instant")
	}
	if base.Equal(later) {
		t.Error("different instants should compare unequal")
	}
	if !base.Before(later) {
		t.Error("Before() should order instants")
	}
}

func TestDateTime_IsZero(t *testing.T) {
	var zero rfc5322.DateTime
	if !zero.IsZero() {
		t.Error("zero DateTime should report IsZero")
	}

	dt, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}
	if dt.IsZero() {
		t.Error("parsed DateTime should not report IsZero")
	}
}

func TestDateTime_Validate(t *testing.T) {
	tests := []struct {
		name    string
		dt      rfc5322.DateTime
		wantErr bool
	}{
		{"zero valid", rfc5322.DateTime{}, false},
		{"normal year", rfc5322.DateTime{Time: time.Date(2026, 12, 31, 18, 37, 7, 0, time.UTC)}, false},
		{"year past 9999", rfc5322.DateTime{Time: time.Date(10001, 1, 1, 0, 0, 0, 0, time.UTC)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.dt.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDateTime_TypeName(t *testing.T) {
	var dt rfc5322.DateTime
	if got := dt.TypeName(); got != "DateTime" {
		t.Errorf("TypeName() = %q, want %q", got, "DateTime")
	}
}

func TestDateTime_JSON_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"negative offset", "Thu, 31 Dec 2026 18:37:07 -0800"},
		{"utc", "Fri, 01 Jan 2027 02:37:07 +0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original, err := rfc5322.ParseDateTime(tt.input)
			if err != nil {
				t.Fatalf("ParseDateTime() error = %v", err)
			}

			data, err := json.Marshal(original)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}

			var decoded rfc5322.DateTime
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("json.Unmarshal() error = %v", err)
			}

			if !decoded.Equal(original) {
				t.Errorf("JSON round-trip failed: got %v, want %v", decoded, original)
			}
		})
	}

	t.Run("zero marshals to empty string", func(t *testing.T) {
		var zero rfc5322.DateTime
		data, err := json.Marshal(zero)
		if err != nil {
			t.Fatalf("json.Marshal() error = %v", err)
		}
		if string(data) != `""` {
			t.Errorf("json.Marshal(zero) = %s, want %q", data, `""`)
		}

		var decoded rfc5322.DateTime
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("json.Unmarshal() error = %v", err)
		}
		if !decoded.IsZero() {
			t.Error("empty string should unmarshal to the zero value")
		}
	})
}

func TestDateTime_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing zone", `"Thu, 31 Dec 2026 18:37:07"`},
		{"iso 8601", `"2026-12-31T18:37:07Z"`},
		{"not a JSON string", `1798764000`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got rfc5322.DateTime
			if err := json.Unmarshal([]byte(tt.data), &got); err == nil {
				t.Errorf("UnmarshalJSON(%s) expected error, got %v", tt.data, got)
			}
		})
	}
}

func TestDateTime_YAML_RoundTrip(t *testing.T) {
	original, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
	if err != nil {
		t.Fatalf("ParseDateTime() error = %v", err)
	}

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}

	var decoded rfc5322.DateTime
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Errorf("YAML round-trip failed: got %v, want %v", decoded, original)
	}
}
