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

package errors

import (
	stderrors "errors"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"grammar failure without reason",
			&ParseError{Type: "Name", Value: "x-unknown"},
			`sectxt: invalid Name value: "x-unknown"`,
		},
		{
			"grammar failure with reason",
			&ParseError{Type: "Field", Value: "NoColonHere", Reason: "missing ':' separator"},
			`sectxt: invalid Field value: "NoColonHere" (missing ':' separator)`,
		},
		{
			"value parser failure",
			&ParseError{Type: "URL", Value: "not a url", Reason: "missing URL scheme"},
			`sectxt: invalid URL value: "not a url" (missing URL scheme)`,
		},
		{
			"empty value",
			&ParseError{Type: "Tag", Value: "", Reason: "tag cannot be empty"},
			`sectxt: invalid Tag value: "" (tag cannot be empty)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := stderrors.New("underlying grammar rejected input")

	tests := []struct {
		name string
		err  *ParseError
		want error
	}{
		{"with cause", &ParseError{Type: "DateTime", Value: "bad", Err: cause}, cause},
		{"without cause", &ParseError{Type: "DateTime", Value: "bad"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Unwrap(); got != tt.want {
				t.Errorf("ParseError.Unwrap() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("errors.Is sees the cause", func(t *testing.T) {
		err := &ParseError{Type: "DateTime", Value: "bad", Err: cause}
		if !stderrors.Is(err, cause) {
			t.Errorf("errors.Is() = false, want true")
		}
	})
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Name", Value: 99},
			"sectxt: cannot marshal invalid Name value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "LineKind", Value: -1},
			"sectxt: cannot marshal invalid LineKind value: -1",
		},
		{
			"zero value",
			&MarshalError{Type: "Name", Value: 0},
			"sectxt: cannot marshal invalid Name value: 0",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Test", Value: 42},
			"sectxt: cannot marshal invalid Test value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Name", Data: []byte{}, Reason: "empty data"},
			"sectxt: cannot unmarshal Name: empty data",
		},
		{
			"invalid format",
			&UnmarshalError{Type: "Field", Data: []byte(`"bad"`), Reason: "invalid format"},
			"sectxt: cannot unmarshal Field: invalid format",
		},
		{
			"data not echoed in message",
			&UnmarshalError{Type: "URL", Data: []byte("mailto:person@example.com"), Reason: "missing URL scheme"},
			"sectxt: cannot unmarshal URL: missing URL scheme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Line", Field: "Field", Reason: "must be empty for comment lines"},
			"sectxt: invalid Line.Field: must be empty for comment lines",
		},
		{
			"without field",
			&ValidationError{Type: "Name", Reason: "invalid Name value"},
			"sectxt: invalid Name: invalid Name value",
		},
		{
			"with value attached",
			&ValidationError{Type: "Field", Field: "URL", Reason: "must be set", Value: ""},
			"sectxt: invalid Field.URL: must be set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
