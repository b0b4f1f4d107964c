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

package txt

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
)

// Name identifies which security.txt field a parsed Field represents.
//
// The eight values other than NameUnknown correspond to the field names
// registered by RFC 9116. NameUnknown marks an extension field: a
// syntactically valid "name: value" line whose name is not in the
// registry. Extension fields are preserved, not rejected, so a document
// using future or vendor-specific fields still parses; the Field carries
// the original spelling of an extension name alongside this enum.
//
// Field names are matched case-insensitively ("CONTACT:" and "contact:"
// select the same Name), which is why the dispatch goes through
// LookupName rather than direct string comparison.
type Name int

const (
	// NameUnknown marks an extension field whose name is not one of the
	// registered security.txt field names. It is the zero value: a Field
	// that has not been assigned a name reports NameUnknown.
	NameUnknown Name = iota

	// NameAcknowledgments links to a page where security researchers are
	// recognized for their reports. The value is an absolute URL.
	NameAcknowledgments

	// NameCanonical states the canonical URI of the security.txt file
	// itself. The value is an absolute URL.
	NameCanonical

	// NameContact tells researchers how to reach the organization about
	// security issues. The value is an absolute URL, commonly a mailto or
	// https address.
	NameContact

	// NameEncryption links to an encryption key that researchers should
	// use for secure communication. The value is an absolute URL.
	NameEncryption

	// NameExpires states when the document's information stops being
	// valid. The value is an RFC 5322 date-time with an explicit zone.
	NameExpires

	// NameHiring links to the organization's security-related job
	// openings. The value is an absolute URL.
	NameHiring

	// NamePolicy links to the organization's vulnerability disclosure
	// policy. The value is an absolute URL.
	NamePolicy

	// NamePreferredLanguages lists the languages the security team
	// prefers for incoming reports. The value is a comma-separated
	// sequence of BCP 47 language tags.
	NamePreferredLanguages
)

// String constants for Name values used in serialization, parsing, and
// field-name matching.
//
// The eight field-name constants are the registered names in lowercase,
// the form used as the case-insensitive match key during line parsing and
// as the stable external representation in JSON and YAML documents.
// NameUnknownStr is not a field name; it only represents NameUnknown in
// serialized enum positions.
const (
	NameUnknownStr            = "unknown"
	NameAcknowledgmentsStr    = "acknowledgments"
	NameCanonicalStr          = "canonical"
	NameContactStr            = "contact"
	NameEncryptionStr         = "encryption"
	NameExpiresStr            = "expires"
	NameHiringStr             = "hiring"
	NamePolicyStr             = "policy"
	NamePreferredLanguagesStr = "preferred-languages"
)

// LookupName maps a field name, as written in a document, to its Name
// value. The match is case-insensitive, so "Contact", "contact", and
// "CONTACT" all resolve to NameContact.
//
// The second return value reports whether the name is registered. An
// unregistered name returns (NameUnknown, false), which callers treat as
// "this is an extension field", not as an error; line parsing never fails
// on an unrecognized name. Note that the literal string "unknown" is not
// a registered field name and also returns (NameUnknown, false).
func LookupName(s string) (Name, bool) {
	switch strings.ToLower(s) {
	case NameAcknowledgmentsStr:
		return NameAcknowledgments, true
	case NameCanonicalStr:
		return NameCanonical, true
	case NameContactStr:
		return NameContact, true
	case NameEncryptionStr:
		return NameEncryption, true
	case NameExpiresStr:
		return NameExpires, true
	case NameHiringStr:
		return NameHiring, true
	case NamePolicyStr:
		return NamePolicy, true
	case NamePreferredLanguagesStr:
		return NamePreferredLanguages, true
	default:
		return NameUnknown, false
	}
}

// ParseName converts a textual representation into a Name value.
//
// Unlike LookupName, which implements the forgiving field-name dispatch
// used during line parsing, ParseName is the strict enum parser used when
// deserializing Name values from JSON and YAML. It accepts the canonical
// vocabulary case-insensitively, including "unknown" for NameUnknown, and
// rejects everything else with a *ParseError carrying the original input.
func ParseName(s string) (Name, error) {
	if strings.ToLower(s) == NameUnknownStr {
		return NameUnknown, nil
	}
	if name, ok := LookupName(s); ok {
		return name, nil
	}
	return NameUnknown, &errors.ParseError{Type: "Name", Value: s}
}

// String returns the canonical string representation of the Name value.
//
// The returned value is always lowercase: the registered field name for
// the eight known values ("contact", "preferred-languages"), or "unknown"
// for NameUnknown and for any value outside the defined constants.
func (n Name) String() string {
	switch n {
	case NameAcknowledgments:
		return NameAcknowledgmentsStr
	case NameCanonical:
		return NameCanonicalStr
	case NameContact:
		return NameContactStr
	case NameEncryption:
		return NameEncryptionStr
	case NameExpires:
		return NameExpiresStr
	case NameHiring:
		return NameHiringStr
	case NamePolicy:
		return NamePolicyStr
	case NamePreferredLanguages:
		return NamePreferredLanguagesStr
	default:
		return NameUnknownStr
	}
}

// Valid reports whether the Name value is one of the defined constants.
// NameUnknown counts as valid; it is the legitimate state of an extension
// field, not a corrupted value.
func (n Name) Valid() bool {
	return n >= NameUnknown && n <= NamePreferredLanguages
}

// TypeName returns "Name", the name of the type for logging and
// debugging. This method implements part of the model.Model interface.
func (n Name) TypeName() string {
	return "Name"
}

// Redacted returns the same string representation as String. Field names
// contain no sensitive information. This method implements part of the
// model.Model interface.
func (n Name) Redacted() string {
	return n.String()
}

// IsZero reports whether the Name has its zero value, NameUnknown. This
// method implements part of the model.Model interface.
//
// Note: NameUnknown is a valid Name (it marks extension fields), so
// IsZero returning true does not indicate an error condition.
func (n Name) IsZero() bool {
	return n == NameUnknown
}

// Equal reports whether this Name is equal to another Name value.
func (n Name) Equal(other Name) bool {
	return n == other
}

// Validate checks whether the Name value is one of the defined constants.
// It returns nil for valid values and a *ValidationError for values
// outside the defined range, which can only arise from numeric casts or
// corrupted deserialization. This method implements part of the
// model.Model interface.
func (n Name) Validate() error {
	if !n.Valid() {
		return &errors.ValidationError{
			Type:   "Name",
			Reason: "invalid Name value",
			Value:  int(n),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for Name.
//
// A valid Name is serialized as its lowercase string representation (for
// example, "contact" or "preferred-languages"). If the value is not
// valid, MarshalJSON returns a *MarshalError and produces no output.
func (n Name) MarshalJSON() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Name", Value: int(n)}
	}
	return []byte(`"` + n.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Name.
//
// The method accepts both string and numeric JSON representations:
//
//   - String: the canonical vocabulary, case-insensitive, via ParseName.
//
//   - Number: the underlying constant value, 0 (NameUnknown) through
//     8 (NamePreferredLanguages).
//
// String input is the preferred, stable representation. Numeric input is
// accepted for compatibility with stores that persist enums as integers.
func (n *Name) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Name", Data: data, Reason: "empty data"}
	}

	// Try string format first.
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Name", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseName(s)
		if err != nil {
			return err
		}
		*n = parsed
		return nil
	}

	// Fallback to numeric format.
	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: data, Reason: err.Error()}
	}
	candidate := Name(i)
	if !candidate.Valid() {
		return &errors.UnmarshalError{Type: "Name", Data: data, Reason: "invalid numeric value"}
	}
	*n = candidate
	return nil
}

// MarshalYAML implements yaml.Marshaler for Name. A valid Name is
// serialized as its canonical string representation; an invalid value
// returns a *MarshalError.
func (n Name) MarshalYAML() (any, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Name", Value: int(n)}
	}
	return n.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for Name, resolving string
// representations via ParseName. On failure it returns the underlying
// *ParseError.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Name", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseName(str)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Name, using the same
// lowercase vocabulary as String. An invalid value returns a
// *MarshalError.
func (n Name) MarshalText() ([]byte, error) {
	if !n.Valid() {
		return nil, &errors.MarshalError{Type: "Name", Value: int(n)}
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Name, accepting
// the same vocabulary as ParseName. On failure it returns the underlying
// *ParseError.
func (n *Name) UnmarshalText(text []byte) error {
	parsed, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// Compile-time check that Name implements the model.Model interface.
var _ model.Model = (*Name)(nil)
