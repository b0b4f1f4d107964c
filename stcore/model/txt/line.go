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
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
)

// Comment represents the text of one comment line, everything after the
// leading "#" exactly as written, including any leading space.
//
// This type implements the model.Model interface. Comments have no value
// grammar: any text at all is a valid Comment, so Validate never fails
// and comment lines can never produce a parse error.
type Comment string

// String returns the comment text without the leading "#".
func (c Comment) String() string {
	return string(c)
}

// Redacted returns the same representation as String. Comment text is
// already public document content.
func (c Comment) Redacted() string {
	return string(c)
}

// TypeName returns "Comment", the canonical name of this model type.
func (c Comment) TypeName() string {
	return "Comment"
}

// IsZero reports whether the comment text is empty. A bare "#" line
// parses to a zero Comment, which is still a legitimate comment; the
// containing Line's Kind records that it exists.
func (c Comment) IsZero() bool {
	return c == ""
}

// Equal reports whether this Comment is equal to another Comment value.
func (c Comment) Equal(other Comment) bool {
	return c == other
}

// Validate always returns nil. Every string is a valid comment.
func (c Comment) Validate() error {
	return nil
}

// MarshalJSON implements json.Marshaler, serializing the Comment as a
// JSON string.
func (c Comment) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(c))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Comment) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Comment", Data: data, Reason: err.Error()}
	}
	*c = Comment(str)
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Comment as a
// YAML scalar.
func (c Comment) MarshalYAML() (any, error) {
	return string(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Comment) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Comment", Data: []byte(node.Value), Reason: err.Error()}
	}
	*c = Comment(str)
	return nil
}

// LineKind discriminates the two shapes a parsed Line can take: a comment
// or a field. LineKindNone is the zero value and marks a Line that holds
// nothing.
type LineKind int

const (
	// LineKindNone marks an empty Line holding neither a comment nor a
	// field. ParseLine never produces it; it is the zero value.
	LineKindNone LineKind = iota

	// LineKindComment marks a Line holding a comment.
	LineKindComment

	// LineKindField marks a Line holding a parsed field.
	LineKindField
)

// String constants for LineKind values used in serialization and parsing.
const (
	LineKindNoneStr    = "none"
	LineKindCommentStr = "comment"
	LineKindFieldStr   = "field"
)

// ParseLineKind converts a textual representation into a LineKind value.
// Unrecognized input returns a *ParseError carrying the original string.
func ParseLineKind(s string) (LineKind, error) {
	switch strings.ToLower(s) {
	case LineKindNoneStr:
		return LineKindNone, nil
	case LineKindCommentStr:
		return LineKindComment, nil
	case LineKindFieldStr:
		return LineKindField, nil
	default:
		return LineKindNone, &errors.ParseError{Type: "LineKind", Value: s}
	}
}

// String returns the canonical lowercase representation of the LineKind,
// or "unknown" for values outside the defined constants.
func (k LineKind) String() string {
	switch k {
	case LineKindNone:
		return LineKindNoneStr
	case LineKindComment:
		return LineKindCommentStr
	case LineKindField:
		return LineKindFieldStr
	default:
		return "unknown"
	}
}

// Valid reports whether the LineKind is one of the defined constants.
func (k LineKind) Valid() bool {
	return k == LineKindNone || k == LineKindComment || k == LineKindField
}

// TypeName returns "LineKind", the canonical name of this model type.
func (k LineKind) TypeName() string {
	return "LineKind"
}

// Redacted returns the same representation as String. Kinds carry no
// sensitive information.
func (k LineKind) Redacted() string {
	return k.String()
}

// IsZero reports whether the LineKind has its zero value, LineKindNone.
func (k LineKind) IsZero() bool {
	return k == LineKindNone
}

// Equal reports whether this LineKind is equal to another LineKind value.
func (k LineKind) Equal(other LineKind) bool {
	return k == other
}

// Validate checks that the LineKind is one of the defined constants.
func (k LineKind) Validate() error {
	if !k.Valid() {
		return &errors.ValidationError{
			Type:   "LineKind",
			Reason: "invalid LineKind value",
			Value:  int(k),
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler for LineKind.
func (k LineKind) MarshalJSON() ([]byte, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "LineKind", Value: int(k)}
	}
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for LineKind, accepting both
// the string vocabulary and the numeric constant values.
func (k *LineKind) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "LineKind", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "LineKind", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseLineKind(s)
		if err != nil {
			return err
		}
		*k = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "LineKind", Data: data, Reason: err.Error()}
	}
	candidate := LineKind(i)
	if !candidate.Valid() {
		return &errors.UnmarshalError{Type: "LineKind", Data: data, Reason: "invalid numeric value"}
	}
	*k = candidate
	return nil
}

// MarshalYAML implements yaml.Marshaler for LineKind.
func (k LineKind) MarshalYAML() (any, error) {
	if !k.Valid() {
		return nil, &errors.MarshalError{Type: "LineKind", Value: int(k)}
	}
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler for LineKind.
func (k *LineKind) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "LineKind", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseLineKind(str)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Line represents one classified line of a security.txt document: either
// a comment or a field, discriminated by Kind.
//
// This type implements the model.Model interface. Exactly one of Comment
// and Field is meaningful, selected by Kind; Validate enforces that the
// other is at its zero value.
type Line struct {
	// Kind records whether this line is a comment or a field.
	Kind LineKind `json:"kind" yaml:"kind"`

	// Comment holds the comment text when Kind is LineKindComment.
	Comment Comment `json:"comment,omitempty" yaml:"comment,omitempty"`

	// Field holds the parsed field when Kind is LineKindField.
	Field Field `json:"field,omitempty" yaml:"field,omitempty"`
}

// ParseLine classifies and parses one line of a security.txt document.
//
// A line whose first character is "#" is a comment; everything after the
// "#" becomes the Comment verbatim, and comment parsing can never fail.
// Every other line, including the empty line, MUST satisfy the field
// grammar and is parsed by ParseField; its errors pass through unchanged.
//
// ParseLine expects a single line with no terminator. It is pure and safe
// for concurrent use.
//
// Example:
//
//	l, _ := txt.ParseLine("# reviewed 2026-01-15")
//	fmt.Println(l.Comment) // Output: " reviewed 2026-01-15"
//
//	l, err := txt.ParseLine("Contact: mailto:security@example.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(l.Field.URL) // Output: "mailto:security@example.com"
func ParseLine(s string) (Line, error) {
	if strings.HasPrefix(s, "#") {
		return Line{Kind: LineKindComment, Comment: Comment(s[1:])}, nil
	}

	f, err := ParseField(s)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: LineKindField, Field: f}, nil
}

// String returns the line's document form: "#" plus the comment text for
// comments, the field's "name:value" form for fields, and an empty string
// for the zero value.
func (l Line) String() string {
	switch l.Kind {
	case LineKindComment:
		return "#" + l.Comment.String()
	case LineKindField:
		if l.Field.IsZero() {
			return ":"
		}
		return l.Field.String()
	default:
		return ""
	}
}

// Redacted returns a safe rendering for production logging, delegating to
// the held value's Redacted form.
func (l Line) Redacted() string {
	switch l.Kind {
	case LineKindComment:
		return "#" + l.Comment.Redacted()
	case LineKindField:
		if l.Field.IsZero() {
			return ":"
		}
		return l.Field.Redacted()
	default:
		return ""
	}
}

// TypeName returns "Line", the canonical name of this model type.
func (l Line) TypeName() string {
	return "Line"
}

// IsZero reports whether the Line holds nothing: no kind, no comment, no
// field.
func (l Line) IsZero() bool {
	return l.Kind.IsZero() && l.Comment.IsZero() && l.Field.IsZero()
}

// Equal reports whether two Lines are the same kind holding equal values.
func (l Line) Equal(other Line) bool {
	return l.Kind.Equal(other.Kind) &&
		l.Comment.Equal(other.Comment) &&
		l.Field.Equal(other.Field)
}

// Clone returns a deep copy of the Line.
func (l Line) Clone() Line {
	clone := l
	clone.Field = l.Field.Clone()
	return clone
}

// Validate checks that the Line's Kind is consistent with its contents.
// This method satisfies the model.Validatable interface.
//
// The zero value is valid. A comment line MUST NOT carry a field, a field
// line MUST carry a valid field and no comment, and LineKindNone MUST
// carry nothing. A field line holding the zero Field is valid: it is the
// degenerate ":" line, an extension with an empty name and empty value,
// and the Kind is what records that the field exists.
func (l Line) Validate() error {
	if err := l.Kind.Validate(); err != nil {
		return err
	}

	switch l.Kind {
	case LineKindComment:
		if !l.Field.IsZero() {
			return &errors.ValidationError{Type: "Line", Field: "Field", Reason: "Field must not be set on a comment line"}
		}
		return l.Comment.Validate()

	case LineKindField:
		if !l.Comment.IsZero() {
			return &errors.ValidationError{Type: "Line", Field: "Comment", Reason: "Comment must not be set on a field line"}
		}
		return l.Field.Validate()

	default:
		if !l.IsZero() {
			return &errors.ValidationError{Type: "Line", Field: "Kind", Reason: "Kind must be set when the line holds data"}
		}
		return nil
	}
}

// MarshalJSON implements json.Marshaler, serializing the Line as a JSON
// object. Validation runs first.
func (l Line) MarshalJSON() ([]byte, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	type line Line
	return json.Marshal(line(l))
}

// UnmarshalJSON implements json.Unmarshaler. The decoded Line is
// validated so kind/content mismatches are rejected at the boundary.
func (l *Line) UnmarshalJSON(data []byte) error {
	type line Line
	var decoded line
	if err := json.Unmarshal(data, &decoded); err != nil {
		return &errors.UnmarshalError{Type: "Line", Data: data, Reason: err.Error()}
	}

	result := Line(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*l = result
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the Line as a YAML
// mapping. Validation runs first.
func (l Line) MarshalYAML() (any, error) {
	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", l.TypeName(), err)
	}
	type line Line
	return line(l), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The decoded Line is
// validated after decoding.
func (l *Line) UnmarshalYAML(node *yaml.Node) error {
	type line Line
	var decoded line
	if err := node.Decode(&decoded); err != nil {
		return &errors.UnmarshalError{Type: "Line", Data: []byte(node.Value), Reason: err.Error()}
	}

	result := Line(decoded)
	if err := result.Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*l = result
	return nil
}

// Compile-time verification that the line types implement model.Model.
var (
	_ model.Model = (*Comment)(nil)
	_ model.Model = (*LineKind)(nil)
	_ model.Model = (*Line)(nil)
)
