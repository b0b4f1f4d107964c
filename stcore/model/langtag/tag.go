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

// Package langtag provides the BCP 47 language tag value types used by the
// Preferred-Languages security.txt field.
//
// This package wraps golang.org/x/text/language behind two sectxt-specific
// types: Tag, one language identifier held exactly as written, and Tags,
// an ordered sequence of them. x/text is used for well-formedness checking
// only. A tag that is syntactically valid BCP 47 but uses subtags unknown
// to the registry (x/text reports those as language.ValueError) is
// accepted, because the field grammar demands well-formedness, not
// registry membership. Canonicalization is never applied to stored values;
// "en-us" and "en-US" are distinct Tag values.
package langtag

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
)

// Tag represents one BCP 47 language tag as it appears in a
// Preferred-Languages value, for example "en", "fr-CA", or "zh-Hant".
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value of Tag (empty string "") is valid
// at the type level and represents "tag not set"; a zero Tag inside a Tags
// sequence is rejected by the sequence's validation, because an empty
// element in a comma-separated list is a grammar violation.
//
// Tag stores the input verbatim. No trimming is applied anywhere in this
// package: a tag written with surrounding spaces (" fr") is syntactically
// invalid and rejected, which is the documented behavior for
// "Preferred-Languages: en, fr" style values.
type Tag string

// ParseTag parses a string into a Tag value, checking it against the
// BCP 47 well-formedness grammar.
//
// The empty string is rejected: unlike most sectxt value types, an empty
// tag is never meaningful input (it only arises from adjacent commas or a
// bare "Preferred-Languages:" line, both grammar violations). Syntax
// errors reported by x/text are returned as *errors.ParseError with the
// underlying error wrapped. Well-formed tags with registry-unknown subtags
// are accepted.
//
// The input is stored exactly as written; ParseTag performs no trimming
// and no case canonicalization.
//
// Example:
//
//	tag, err := langtag.ParseTag("fr-CA")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tag) // Output: "fr-CA"
func ParseTag(s string) (Tag, error) {
	if s == "" {
		return Tag(""), &errors.ParseError{Type: "Tag", Value: s, Reason: "tag cannot be empty"}
	}
	if err := checkWellFormed(s); err != nil {
		return Tag(""), err
	}
	return Tag(s), nil
}

// checkWellFormed validates BCP 47 syntax via x/text. ValueError means
// well-formed but unknown to the registry, which is acceptable here.
func checkWellFormed(s string) error {
	if _, err := language.Parse(s); err != nil {
		if _, ok := err.(language.ValueError); !ok {
			return &errors.ParseError{Type: "Tag", Value: s, Reason: err.Error(), Err: err}
		}
	}
	return nil
}

// String returns the tag exactly as stored. This method satisfies the
// model.Loggable interface's String requirement.
func (t Tag) String() string {
	return string(t)
}

// Redacted returns the same representation as String. Language tags carry
// no sensitive information. This method satisfies the model.Loggable
// interface's Redacted requirement.
func (t Tag) Redacted() string {
	return string(t)
}

// TypeName returns "Tag", the canonical name of this model type. This
// method satisfies the model.Identifiable interface.
func (t Tag) TypeName() string {
	return "Tag"
}

// IsZero reports whether this Tag is the zero value (empty string). This
// method satisfies the model.ZeroCheckable interface.
func (t Tag) IsZero() bool {
	return t == ""
}

// Equal reports whether this Tag is equal to another Tag value. The
// comparison is exact and case-sensitive because Tag preserves the
// original spelling; callers that want BCP 47 case-insensitive matching
// SHOULD compare Canonical values instead.
func (t Tag) Equal(other Tag) bool {
	return t == other
}

// Canonical returns the x/text canonical form of the tag, for callers that
// need matching or collation semantics beyond the verbatim string. The
// zero value and syntactically invalid tags return an error.
func (t Tag) Canonical() (language.Tag, error) {
	if t.IsZero() {
		return language.Tag{}, &errors.ParseError{Type: "Tag", Value: "", Reason: "tag cannot be empty"}
	}
	parsed, err := language.Parse(string(t))
	if err != nil {
		if _, ok := err.(language.ValueError); !ok {
			return language.Tag{}, &errors.ParseError{Type: "Tag", Value: string(t), Reason: err.Error(), Err: err}
		}
	}
	return parsed, nil
}

// Validate checks that the Tag value is either the zero value or a
// well-formed BCP 47 tag. This method satisfies the model.Validatable
// interface.
func (t Tag) Validate() error {
	if t.IsZero() {
		return nil
	}
	return checkWellFormed(string(t))
}

// MarshalJSON implements json.Marshaler, serializing the Tag as a JSON
// string. Validation runs first. The zero value marshals to "".
func (t Tag) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string
// into a Tag via ParseTag. The empty JSON string unmarshals to the zero
// value rather than failing, so that optional fields round-trip.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: data, Reason: err.Error()}
	}

	if str == "" {
		*t = Tag("")
		return nil
	}

	parsed, err := ParseTag(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Tag as a YAML
// scalar. Validation runs first.
func (t Tag) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return string(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar
// into a Tag via ParseTag. An empty scalar unmarshals to the zero value.
func (t *Tag) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Tag", Data: []byte(node.Value), Reason: err.Error()}
	}

	if str == "" {
		*t = Tag("")
		return nil
	}

	parsed, err := ParseTag(str)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

// Tags represents the ordered sequence of language tags carried by one
// Preferred-Languages field. Order is significant and is preserved exactly
// as the tags appeared in the comma-separated value.
//
// This type implements the model.Model interface. The zero value (nil or
// empty slice) is valid at the type level and represents "no tags"; the
// containing Field's validation decides whether that is acceptable.
type Tags []Tag

// ParseTags parses a comma-separated list of language tags, the raw value
// of a Preferred-Languages field, into a Tags sequence.
//
// The input is split on every comma and each resulting substring is parsed
// literally via ParseTag, with no trimming, so "en, fr" fails on the
// element " fr". The first invalid element fails the whole parse, and the
// returned error is that element's error. An empty input is one empty
// element and therefore fails.
//
// Comma order is preserved in the result.
//
// Example:
//
//	tags, err := langtag.ParseTags("en,fr,de")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(tags) // Output: "en,fr,de"
func ParseTags(s string) (Tags, error) {
	parts := strings.Split(s, ",")
	tags := make(Tags, 0, len(parts))

	for _, part := range parts {
		tag, err := ParseTag(part)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// String returns the comma-joined form of the sequence, matching the raw
// value it was parsed from. This method satisfies the model.Loggable
// interface's String requirement.
func (ts Tags) String() string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

// Redacted returns the same representation as String. Language tags carry
// no sensitive information.
func (ts Tags) Redacted() string {
	return ts.String()
}

// TypeName returns "Tags", the canonical name of this model type.
func (ts Tags) TypeName() string {
	return "Tags"
}

// IsZero reports whether the sequence is empty (nil or zero length).
func (ts Tags) IsZero() bool {
	return len(ts) == 0
}

// Equal reports whether two sequences hold the same tags in the same
// order. A nil and an empty sequence are equal.
func (ts Tags) Equal(other Tags) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if !ts[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the sequence. The returned slice shares no
// backing storage with the receiver. This method satisfies the
// model.Cloneable contract.
func (ts Tags) Clone() Tags {
	if ts == nil {
		return nil
	}
	clone := make(Tags, len(ts))
	copy(clone, ts)
	return clone
}

// Validate checks that every element of the sequence is a non-empty,
// well-formed tag. This method satisfies the model.Validatable interface.
//
// An empty sequence is valid ("no tags"). A sequence containing a zero
// element is invalid, because empty elements cannot arise from a correct
// parse of a comma-separated value.
func (ts Tags) Validate() error {
	for i, t := range ts {
		if t.IsZero() {
			return &errors.ValidationError{
				Type:   "Tags",
				Reason: fmt.Sprintf("element %d is empty", i),
			}
		}
		if err := t.Validate(); err != nil {
			return &errors.ValidationError{
				Type:   "Tags",
				Reason: fmt.Sprintf("element %d: %v", i, err),
				Value:  string(t),
			}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the sequence as a
// JSON array of strings. Validation runs first.
func (ts Tags) MarshalJSON() ([]byte, error) {
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", ts.TypeName(), err)
	}
	type tags Tags
	return json.Marshal(tags(ts))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON array of
// strings. Each element passes through Tag's unmarshaler and the resulting
// sequence is validated, so empty or malformed elements are rejected.
func (ts *Tags) UnmarshalJSON(data []byte) error {
	type tags Tags
	var decoded tags
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	result := Tags(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*ts = result
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the sequence as a
// YAML sequence of scalars. Validation runs first.
func (ts Tags) MarshalYAML() (any, error) {
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", ts.TypeName(), err)
	}
	type tags Tags
	return tags(ts), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML sequence
// of scalars. Each element passes through Tag's unmarshaler and the
// resulting sequence is validated.
func (ts *Tags) UnmarshalYAML(node *yaml.Node) error {
	type tags Tags
	var decoded tags
	if err := node.Decode(&decoded); err != nil {
		return err
	}

	result := Tags(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*ts = result
	return nil
}

// Compile-time verification that Tag and Tags implement model.Model.
var (
	_ model.Model = (*Tag)(nil)
	_ model.Model = (*Tags)(nil)
)
