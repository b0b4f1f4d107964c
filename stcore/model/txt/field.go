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

// Package txt implements the line-level grammar of security.txt documents
// as defined by RFC 9116.
//
// The entry points are ParseLine, which classifies one line of text as a
// comment or a field, and ParseField, which parses the "name: value" form
// directly. Both are pure functions over a single line: they perform no
// I/O, and they know nothing about other lines, so document-level rules
// (required fields, duplicate detection) belong to callers. The payload
// grammars (absolute URLs, RFC 5322 timestamps, BCP 47 language tags)
// live in their own packages (weburl, rfc5322, langtag) and are composed
// here through each field name's dispatch.
package txt

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
	"wellknown.dev/sectxt/stcore/model/langtag"
	"wellknown.dev/sectxt/stcore/model/rfc5322"
	"wellknown.dev/sectxt/stcore/model/weburl"
)

// Field represents one parsed security.txt field: a name, matched
// case-insensitively against the registered field names, together with
// the typed payload that name calls for.
//
// Exactly one payload is populated per field, selected by Name:
//
//   - The six URL-valued names (acknowledgments, canonical, contact,
//     encryption, hiring, policy) populate URL.
//   - NameExpires populates Expires.
//   - NamePreferredLanguages populates Languages.
//   - NameUnknown marks an extension field and populates ExtName with
//     the name exactly as written (original case preserved, and empty
//     when the line begins with the separator) and Value with the
//     verbatim, untrimmed value.
//
// This type implements the model.Model interface. The zero value (no
// name, no payload) is valid and represents "no field"; Validate enforces
// the payload exclusivity rules on everything else.
//
// Field values are constructed by ParseField and are immutable by
// convention; nothing in this package mutates a Field after construction.
type Field struct {
	// Name identifies which registered field this is, or NameUnknown for
	// an extension field.
	Name Name `json:"name" yaml:"name"`

	// URL is the payload of the six URL-valued field names.
	URL weburl.URL `json:"url,omitempty" yaml:"url,omitempty"`

	// Expires is the payload of the expires field name.
	Expires rfc5322.DateTime `json:"expires,omitempty" yaml:"expires,omitempty"`

	// Languages is the payload of the preferred-languages field name.
	Languages langtag.Tags `json:"languages,omitempty" yaml:"languages,omitempty"`

	// ExtName is the extension field's name exactly as written in the
	// document. It is set only when Name is NameUnknown.
	ExtName string `json:"ext_name,omitempty" yaml:"ext_name,omitempty"`

	// Value is the extension field's verbatim value, including any
	// surrounding whitespace. It is set only when Name is NameUnknown.
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// urlValued reports whether a Name carries a URL payload.
func urlValued(n Name) bool {
	switch n {
	case NameAcknowledgments, NameCanonical, NameContact, NameEncryption, NameHiring, NamePolicy:
		return true
	default:
		return false
	}
}

// ParseField parses one "name: value" line into a Field.
//
// The line is split at the first colon; everything before it is the field
// name and everything after it, untrimmed, is the value. A line without a
// colon violates the field grammar and returns a *errors.ParseError whose
// reason is "missing ':' separator".
//
// The name selects the value grammar, matched case-insensitively:
//
//   - acknowledgments, canonical, contact, encryption, hiring, policy:
//     the value MUST be a non-empty absolute URL (weburl.ParseURL). The
//     customary space after the colon is absorbed by URL normalization.
//   - expires: the value MUST be an RFC 5322 date-time
//     (rfc5322.ParseDateTime), which likewise tolerates the leading
//     space as folding whitespace.
//   - preferred-languages: the value MUST be a comma-separated sequence
//     of BCP 47 tags (langtag.ParseTags). Splitting is literal, so a
//     space after a comma makes that element invalid.
//
// When a known name's value grammar rejects the value, ParseField returns
// that grammar's error unchanged.
//
// Any other name produces an extension Field. Extension parsing cannot
// fail: the name keeps its original case in ExtName and the value is
// stored verbatim in Value.
//
// ParseField is pure and safe for concurrent use.
//
// Example:
//
//	f, err := txt.ParseField("Contact: mailto:security@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.Name) // Output: "contact"
func ParseField(s string) (Field, error) {
	idx := strings.Index(s, ":")
	if idx < 0 {
		return Field{}, &errors.ParseError{Type: "Field", Value: s, Reason: "missing ':' separator"}
	}

	name, value := s[:idx], s[idx+1:]
	matched, known := LookupName(name)

	switch {
	case known && urlValued(matched):
		u, err := weburl.ParseURL(value)
		if err != nil {
			return Field{}, err
		}
		if u.IsZero() {
			return Field{}, &errors.ParseError{Type: "URL", Value: value, Reason: "URL cannot be empty"}
		}
		return Field{Name: matched, URL: u}, nil

	case matched == NameExpires:
		dt, err := rfc5322.ParseDateTime(value)
		if err != nil {
			return Field{}, err
		}
		return Field{Name: NameExpires, Expires: dt}, nil

	case matched == NamePreferredLanguages:
		tags, err := langtag.ParseTags(value)
		if err != nil {
			return Field{}, err
		}
		return Field{Name: NamePreferredLanguages, Languages: tags}, nil

	default:
		return Field{Name: NameUnknown, ExtName: name, Value: value}, nil
	}
}

// String returns a "name:value" rendering of the field. Known fields use
// the canonical lowercase name and the payload's canonical form;
// extension fields reproduce the original name and verbatim value. The
// zero value renders as an empty string.
//
// The result MAY contain sensitive data (contact addresses); use Redacted
// for production logging.
func (f Field) String() string {
	if f.IsZero() {
		return ""
	}
	if f.Name == NameUnknown {
		return f.ExtName + ":" + f.Value
	}
	return f.Name.String() + ":" + f.payloadString()
}

// payloadString returns the canonical form of whichever payload the name
// selects.
func (f Field) payloadString() string {
	switch {
	case urlValued(f.Name):
		return f.URL.String()
	case f.Name == NameExpires:
		return f.Expires.String()
	case f.Name == NamePreferredLanguages:
		return f.Languages.String()
	default:
		return ""
	}
}

// Redacted returns a safe rendering for production logging. Known fields
// delegate to the payload's Redacted form, so a contact field shows
// "contact:mailto:[redacted]". Extension values are hidden entirely
// because their content is arbitrary.
func (f Field) Redacted() string {
	if f.IsZero() {
		return ""
	}
	if f.Name == NameUnknown {
		return f.ExtName + ":[redacted]"
	}
	switch {
	case urlValued(f.Name):
		return f.Name.String() + ":" + f.URL.Redacted()
	case f.Name == NameExpires:
		return f.Name.String() + ":" + f.Expires.Redacted()
	case f.Name == NamePreferredLanguages:
		return f.Name.String() + ":" + f.Languages.Redacted()
	default:
		return f.Name.String() + ":"
	}
}

// TypeName returns "Field", the canonical name of this model type. This
// method satisfies the model.Identifiable interface.
func (f Field) TypeName() string {
	return "Field"
}

// IsZero reports whether the Field holds no data at all: no name and no
// payload. This method satisfies the model.ZeroCheckable interface.
func (f Field) IsZero() bool {
	return f.Name == NameUnknown &&
		f.URL.IsZero() &&
		f.Expires.IsZero() &&
		f.Languages.IsZero() &&
		f.ExtName == "" &&
		f.Value == ""
}

// Equal reports whether two Fields represent the same parsed field: same
// name and equal payload. Tag sequences compare element-wise and
// timestamps compare as instant plus offset.
func (f Field) Equal(other Field) bool {
	return f.Name.Equal(other.Name) &&
		f.URL.Equal(other.URL) &&
		f.Expires.Equal(other.Expires) &&
		f.Languages.Equal(other.Languages) &&
		f.ExtName == other.ExtName &&
		f.Value == other.Value
}

// Clone returns a deep copy of the Field. The Languages sequence is
// copied so the clone shares no backing storage with the original. This
// method satisfies the model.Cloneable contract.
func (f Field) Clone() Field {
	clone := f
	clone.Languages = f.Languages.Clone()
	return clone
}

// Validate checks that the Field carries exactly the payload its Name
// calls for and that the payload itself is valid. This method satisfies
// the model.Validatable interface.
//
// The zero value is valid. Otherwise:
//
//   - a URL-valued name MUST have a non-zero, valid URL and nothing else;
//   - expires MUST have a non-zero, valid timestamp and nothing else;
//   - preferred-languages MUST have a non-empty, valid tag sequence and
//     nothing else;
//   - an extension MUST NOT have a registered field name in ExtName and
//     MUST NOT carry a typed payload. An empty ExtName is allowed: the
//     line ":v" parses to an extension with an empty name.
func (f Field) Validate() error {
	if f.IsZero() {
		return nil
	}

	if err := f.Name.Validate(); err != nil {
		return err
	}

	switch {
	case urlValued(f.Name):
		if f.URL.IsZero() {
			return &errors.ValidationError{Type: "Field", Field: "URL", Reason: "URL must be set"}
		}
		if err := f.URL.Validate(); err != nil {
			return err
		}
		return f.requireOnly("URL")

	case f.Name == NameExpires:
		if f.Expires.IsZero() {
			return &errors.ValidationError{Type: "Field", Field: "Expires", Reason: "Expires must be set"}
		}
		if err := f.Expires.Validate(); err != nil {
			return err
		}
		return f.requireOnly("Expires")

	case f.Name == NamePreferredLanguages:
		if f.Languages.IsZero() {
			return &errors.ValidationError{Type: "Field", Field: "Languages", Reason: "Languages must be set"}
		}
		if err := f.Languages.Validate(); err != nil {
			return err
		}
		return f.requireOnly("Languages")

	default:
		if f.ExtName != "" {
			if _, known := LookupName(f.ExtName); known {
				return &errors.ValidationError{
					Type:   "Field",
					Field:  "ExtName",
					Reason: "registered field name stored as extension",
					Value:  f.ExtName,
				}
			}
		}
		return f.requireOnly("ExtName", "Value")
	}
}

// requireOnly verifies that every payload except the named ones is at its
// zero value, enforcing the payload exclusivity invariant.
func (f Field) requireOnly(keep ...string) error {
	kept := func(name string) bool {
		for _, k := range keep {
			if k == name {
				return true
			}
		}
		return false
	}
	populated := func(name string, set bool) error {
		if !kept(name) && set {
			return &errors.ValidationError{
				Type:   "Field",
				Field:  name,
				Reason: fmt.Sprintf("%s must not be set on a %s field", name, f.Name),
			}
		}
		return nil
	}

	if err := populated("URL", !f.URL.IsZero()); err != nil {
		return err
	}
	if err := populated("Expires", !f.Expires.IsZero()); err != nil {
		return err
	}
	if err := populated("Languages", !f.Languages.IsZero()); err != nil {
		return err
	}
	if err := populated("ExtName", f.ExtName != ""); err != nil {
		return err
	}
	return populated("Value", f.Value != "")
}

// MarshalJSON implements json.Marshaler, serializing the Field as a JSON
// object. Validation runs first; an inconsistent Field fails to marshal.
func (f Field) MarshalJSON() ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	type field Field
	return json.Marshal(field(f))
}

// UnmarshalJSON implements json.Unmarshaler. Each payload passes through
// its own unmarshaler and the assembled Field is validated, so payload
// exclusivity violations are rejected at the boundary.
func (f *Field) UnmarshalJSON(data []byte) error {
	type field Field
	var decoded field
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &errors.UnmarshalError{Type: "Field", Data: data, Reason: err.Error()}
	}

	result := Field(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*f = result
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Field as a YAML
// mapping. Validation runs first.
func (f Field) MarshalYAML() (any, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
	}
	type field Field
	return field(f), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The assembled Field is
// validated after decoding.
func (f *Field) UnmarshalYAML(node *yaml.Node) error {
	type field Field
	var decoded field
	if err := node.Decode(&decoded); err != nil {
		return &errors.UnmarshalError{Type: "Field", Data: []byte(node.Value), Reason: err.Error()}
	}

	result := Field(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*f = result
	return nil
}

// Compile-time verification that Field implements model.Model.
var _ model.Model = (*Field)(nil)
