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

// Package rfc5322 provides the timestamp value type used by the Expires
// security.txt field.
//
// The Expires field carries an Internet Message Format date-time, the
// grammar defined by RFC 5322 section 3.3: "Thu, 31 Dec 2026 18:37:07
// -0800" and its variants (day-of-week optional, two-digit years with
// obsolete-form interpretation, named zones such as GMT). This package
// delegates that grammar to net/mail.ParseDate, the standard library's
// RFC 5322 implementation, and wraps the result in a DateTime value that
// remembers both the instant and the UTC offset it was written with.
package rfc5322

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"time"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
)

// DateTime represents one RFC 5322 date-time as carried by an Expires
// field. It wraps time.Time, preserving the UTC offset the timestamp was
// written with, so "18:37:07 -0800" and "02:37:07 +0000" denote the same
// instant but remain distinguishable values.
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value (time.Time's zero instant) is valid
// at the type level and represents "no timestamp"; the containing Field's
// validation decides whether that is acceptable.
type DateTime struct {
	// Time holds the parsed instant together with a fixed-offset location
	// recording the timestamp's original UTC offset.
	Time time.Time
}

// ParseDateTime parses an RFC 5322 section 3.3 date-time string into a
// DateTime value.
//
// The full grammar is accepted: the leading day-of-week is optional,
// folding whitespace around tokens is tolerated, years MAY be written with
// two digits (interpreted per the obsolete-date rules), and the zone MAY
// be numeric ("-0800") or one of the named zones ("GMT", "EST"). A zone is
// always required; a timestamp without one is not an RFC 5322 date-time
// and is rejected. The empty string is rejected for the same reason.
//
// Failures are returned as *errors.ParseError with the underlying
// net/mail error wrapped.
//
// Example:
//
//	dt, err := rfc5322.ParseDateTime("Thu, 31 Dec 2026 18:37:07 -0800")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dt) // Output: "Thu, 31 Dec 2026 18:37:07 -0800"
func ParseDateTime(s string) (DateTime, error) {
	parsed, err := mail.ParseDate(s)
	if err != nil {
		return DateTime{}, &errors.ParseError{Type: "DateTime", Value: s, Reason: err.Error(), Err: err}
	}
	return DateTime{Time: parsed}, nil
}

// String returns the timestamp in the canonical RFC 5322 form, with the
// day-of-week and a numeric zone ("Thu, 31 Dec 2026 18:37:07 -0800"). The
// zero value renders as an empty string. This method satisfies the
// model.Loggable interface's String requirement.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(time.RFC1123Z)
}

// Redacted returns the same representation as String. An expiry timestamp
// carries no sensitive information. This method satisfies the
// model.Loggable interface's Redacted requirement.
func (d DateTime) Redacted() string {
	return d.String()
}

// TypeName returns "DateTime", the canonical name of this model type. This
// method satisfies the model.Identifiable interface.
func (d DateTime) TypeName() string {
	return "DateTime"
}

// IsZero reports whether this DateTime is the zero value (the zero
// instant). This method satisfies the model.ZeroCheckable interface.
func (d DateTime) IsZero() bool {
	return d.Time.IsZero()
}

// Equal reports whether this DateTime is equal to another DateTime value.
// Two values are equal only when they denote the same instant at the same
// UTC offset: "18:37:07 -0800" and "02:37:07 +0000" compare unequal even
// though they name the same moment. Callers that want instant-only
// comparison can compare the Time fields with time.Time.Equal directly.
func (d DateTime) Equal(other DateTime) bool {
	if !d.Time.Equal(other.Time) {
		return false
	}
	_, offsetA := d.Time.Zone()
	_, offsetB := other.Time.Zone()
	return offsetA == offsetB
}

// Before reports whether this DateTime denotes an instant strictly earlier
// than other. Offsets do not participate; only the instant matters.
func (d DateTime) Before(other DateTime) bool {
	return d.Time.Before(other.Time)
}

// Validate checks that the DateTime holds a representable timestamp. This
// method satisfies the model.Validatable interface.
//
// The zero value is valid. A non-zero value MUST fall within years 1
// through 9999 so that every valid DateTime can be rendered and reparsed
// through its serialized forms.
func (d DateTime) Validate() error {
	if d.IsZero() {
		return nil
	}
	if year := d.Time.Year(); year < 1 || year > 9999 {
		return &errors.ValidationError{
			Type:   "DateTime",
			Reason: fmt.Sprintf("year %d out of representable range", year),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the DateTime as a
// JSON string in canonical RFC 5322 form. Validation runs first. The zero
// value marshals to "".
func (d DateTime) MarshalJSON() ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string
// into a DateTime via ParseDateTime. The empty JSON string unmarshals to
// the zero value so that optional fields round-trip.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "DateTime", Data: data, Reason: err.Error()}
	}

	if str == "" {
		*d = DateTime{}
		return nil
	}

	parsed, err := ParseDateTime(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the DateTime as a
// YAML scalar in canonical RFC 5322 form. Validation runs first.
func (d DateTime) MarshalYAML() (any, error) {
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", d.TypeName(), err)
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar
// into a DateTime via ParseDateTime. An empty scalar unmarshals to the
// zero value.
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "DateTime", Data: []byte(node.Value), Reason: err.Error()}
	}

	if str == "" {
		*d = DateTime{}
		return nil
	}

	parsed, err := ParseDateTime(str)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Compile-time verification that DateTime implements model.Model.
var _ model.Model = (*DateTime)(nil)
