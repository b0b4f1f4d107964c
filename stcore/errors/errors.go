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

// Package errors provides reusable error types for sectxt model types.
//
// This package defines the common error values used across the sectxt
// packages (txt, weburl, langtag, rfc5322) when parsing, marshaling and
// unmarshaling strongly typed values. Centralizing these types gives every
// grammar in the library one error handling story: three independent value
// grammars (absolute URLs, RFC 5322 date-times, BCP 47 language tags) plus
// the line grammar itself all surface failures through the same small set
// of error structs with stable message formats.
//
// The errors in this package are intentionally simple value carriers. They
// are designed to be:
//
//   - easy to construct from parsing / marshaling / unmarshaling code,
//   - easy to recognize via type assertions or errors.As,
//   - and easy for users to understand when surfaced in logs or diagnostics.
//
// # Error Types
//
//   - ParseError
//     Returned when parsing text into a typed value fails. This covers both
//     grammar failures of the line format itself (a field line without a
//     colon separator) and failures of the underlying value grammars. When
//     a value parser rejected the input, Reason carries the underlying
//     description and Err the wrapped cause.
//
//   - MarshalError
//     Returned when marshaling an invalid enum-like value fails. Use this
//     in MarshalJSON / MarshalText implementations to reject values that do
//     not correspond to known constants.
//
//   - UnmarshalError
//     Returned when unmarshaling data into a typed value fails due to
//     invalid input, parse errors or constraint violations.
//
//   - ValidationError
//     Returned when validation of a model type fails. Use this in
//     Validate() methods to report constraint violations or invalid field
//     values.
//
// # Usage
//
// Each package that defines parsed value types can use these error types
// directly or create type aliases for better API clarity:
//
//	import "wellknown.dev/sectxt/stcore/errors"
//
//	func ParseName(s string) (Name, error) {
//	    if n, ok := LookupName(s); ok {
//	        return n, nil
//	    }
//	    return NameUnknown, &errors.ParseError{Type: "Name", Value: s}
//	}
package errors

import "strconv"

// ParseError is returned when parsing text into a strongly typed sectxt
// value fails.
//
// Type identifies the logical type being parsed (for example, "Field",
// "URL", "DateTime", "Tag"), and Value contains the exact input that could
// not be interpreted. Reason, when non-empty, describes which rule of the
// underlying grammar rejected the input; for failures raised by a wrapped
// value parser (net/url, net/mail, x/text/language) it carries that
// parser's own message, so that no failure is ever silently swallowed.
//
// Err optionally holds the wrapped cause and is exposed through Unwrap, so
// callers can use errors.Is / errors.As against the underlying parser
// errors when they need more than the textual description.
//
// # Example
//
//	// Returned error will format as:
//	// `sectxt: invalid Field value: "NoColonHere" (missing ':' separator)`
//	return Field{}, &errors.ParseError{
//	    Type:   "Field",
//	    Value:  s,
//	    Reason: "missing ':' separator",
//	}
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "URL").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string

	// Reason is a short, human-readable description of the failure. It MAY
	// be empty when the type and value alone are self-explanatory.
	Reason string

	// Err is the underlying cause, when the failure originated in one of
	// the wrapped value parsers. MAY be nil.
	Err error
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	`sectxt: invalid {Type} value: {Value}`
//	`sectxt: invalid {Type} value: {Value} ({Reason})` (when Reason is set)
//
// For example:
//
//	`sectxt: invalid URL value: "not a url" (missing URL scheme)`
//
// The format is intentionally stable so that callers can rely on it for
// diagnostics, while still preferring type assertions where possible.
func (e *ParseError) Error() string {
	msg := "sectxt: invalid " + e.Type + " value: " + strconv.Quote(e.Value)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

// Unwrap returns the underlying cause of the parse failure, or nil when
// the failure did not originate in a wrapped value parser. This makes
// ParseError transparent to errors.Is and errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalError is returned when marshaling a typed value fails due to it
// being outside the set of valid constants.
//
// Type identifies the logical type being marshaled (for example, "Name" or
// "LineKind"), and Value contains the underlying numeric value that was
// deemed invalid.
//
// This error is primarily used as a guardrail: it prevents invalid
// enum-like values from being silently emitted into JSON, YAML or other
// serialized forms. In most cases a MarshalError indicates a programming
// error (for example, a numeric cast that was never validated).
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"sectxt: cannot marshal invalid {Type} value: {Value}"
//
// where Value is rendered as a decimal integer. For example:
//
//	"sectxt: cannot marshal invalid Name value: 99"
func (e *MarshalError) Error() string {
	return "sectxt: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value
// fails.
//
// Type identifies the logical type being populated (for example, "Field"),
// Data contains the original raw payload (typically a JSON fragment), and
// Reason provides a human-readable description of what went wrong.
//
// This struct is intended to be surfaced directly in diagnostics or logs so
// that users can understand why their document or payload could not be
// interpreted. Callers MAY wrap UnmarshalError with additional context when
// propagating it further up the stack.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	//
	// Callers MAY choose to log or redact this field depending on privacy
	// and size considerations.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	//
	// Reason SHOULD describe what went wrong (for example, "empty data")
	// rather than repeating the type name; the type name is already
	// available in the Type field and reflected in Error().
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"sectxt: cannot unmarshal {Type}: {Reason}"
//
// For example:
//
//	"sectxt: cannot unmarshal Name: empty data"
//
// The Data field is intentionally not included in the formatted message to
// avoid excessively verbose or sensitive logs; callers can log it
// separately when appropriate.
func (e *UnmarshalError) Error() string {
	return "sectxt: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for
// example, "Field", "Line"), Field optionally identifies which field failed
// validation, Reason provides a human-readable explanation of the failure,
// and Value optionally contains the problematic value.
//
// This error is used by Validate() methods in model types to report
// constraint violations or invalid field values.
//
// # Example
//
//	func (l Line) Validate() error {
//	    if l.Kind == LineKindComment && !l.Field.IsZero() {
//	        return &errors.ValidationError{
//	            Type:   "Line",
//	            Field:  "Field",
//	            Reason: "must be empty for comment lines",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	// May be nil if not applicable or if the value should not be logged.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"sectxt: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"sectxt: invalid {Type}: {Reason}" (when Field is empty)
//
// For example:
//
//	"sectxt: invalid Line.Field: must be empty for comment lines"
//	"sectxt: invalid Name: invalid value"
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "sectxt: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "sectxt: invalid " + e.Type + ": " + e.Reason
}
