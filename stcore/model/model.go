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

// Package model defines the core contracts that all sectxt domain types
// MUST implement to ensure consistency, type safety, and proper behavior
// across the library.
//
// Every domain type representing a parsed security.txt entity (such as
// Field, Line, Comment, URL, Tag, DateTime) SHOULD implement the Model
// interface or its constituent parts (Validatable, Serializable, Loggable,
// Identifiable, ZeroCheckable). These interfaces establish a common
// contract for validation, serialization, logging, and identity that
// enables generic operations and guarantees safety at compile time.
//
// The contracts defined in this package prioritize data integrity and
// debuggability. Validation ensures that invalid states cannot be
// constructed or persisted: a parsed Contact field never holds a malformed
// URL, and an Expires field never holds a timestamp without an explicit
// offset. Serialization provides round-trip guarantees for JSON and YAML.
// Loggable protects sensitive data (contact addresses are PII) from
// accidental exposure in logs. Identifiable enables structured logging and
// precise error messages. ZeroCheckable supports optional field detection.
//
// All sectxt model types are immutable value types constructed atomically
// by a single parse call, making them naturally safe for concurrent read
// access. Unmarshal methods mutate their receiver and require exclusive
// access, like any Go unmarshaler.
//
// Types implementing Model can be used with the generic helper functions
// provided in this package, such as ValidateAll, FilterZero, ToJSON,
// ToYAML, Clone, and Equal.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all fundamental contracts required
// for sectxt domain types. Any type implementing Model gains automatic
// support for validation, serialization to JSON and YAML, safe logging,
// type identification, and zero-value detection.
//
// Implementations MUST satisfy all embedded interfaces: Validatable ensures
// data integrity by checking invariants; Serializable provides round-trip
// JSON and YAML encoding; Loggable offers both safe (redacted) and unsafe
// (full) string representations; Identifiable supplies a canonical type
// name; and ZeroCheckable detects empty or uninitialized instances.
//
// Model instances are treated as immutable value types. Methods defined on
// Model MUST NOT mutate the receiver unless explicitly documented (the
// unmarshal half of Serializable). Concurrent reads are safe; concurrent
// writes require external synchronization.
//
// Example implementation:
//
//	type Comment string
//
//	func (c Comment) Validate() error   { return nil }
//	func (c Comment) TypeName() string  { return "Comment" }
//	func (c Comment) IsZero() bool      { return c == "" }
//	func (c Comment) String() string    { return string(c) }
//	func (c Comment) Redacted() string  { return string(c) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Comment)(nil) // Compile-time check
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state
// to ensure data integrity. Every model type MUST implement Validate to
// verify that all invariants hold and that the instance is in a consistent
// state.
//
// The Validate method MUST check all required fields, verify cross-field
// consistency (for example, ensuring that a Field carries exactly the
// payload its Name calls for), recursively validate nested values by
// calling their Validate methods, and return nil if and only if the
// instance is fully valid. When validation fails, the returned error MUST
// describe what is invalid in a way that helps callers diagnose the
// problem. Generic messages such as "validation failed" are discouraged;
// prefer specific messages like "Field.URL must be set" or "Line.Kind is
// not a known kind".
//
// Validate MUST be fast, deterministic, and idempotent. It MUST NOT mutate
// the receiver, MUST NOT have side effects, and MUST NOT perform I/O or
// depend on external mutable state.
//
// Callers SHOULD invoke Validate at boundaries: immediately after
// unmarshaling data from JSON or YAML, after constructing instances by
// hand rather than through a Parse function, and before handing values to
// code that assumes the parse invariants hold. Values returned by the
// ParseLine / ParseField family always validate cleanly by construction.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants and is
	// ready for use. It returns nil if the instance is valid, or a
	// descriptive error explaining what is wrong if validation fails.
	//
	// This method MUST NOT mutate the receiver and MUST NOT have side
	// effects. It MUST be safe to call concurrently with other reads.
	Validate() error
}

// Serializable defines the contract for types that can be serialized to and
// deserialized from JSON and YAML. All model types MUST support both
// formats so that parsed documents can flow into API payloads (JSON) and
// tool configuration (YAML) without bespoke adapters.
//
// Implementations MUST call Validate before marshaling so that only valid
// instances are serialized, and MUST call Validate (directly or through the
// corresponding Parse function) after unmarshaling so that malformed data
// is rejected at the boundary rather than propagating. If validation or
// parsing fails, the marshal or unmarshal method MUST return that error.
//
// Both formats MUST round-trip: a value serialized to JSON and then
// deserialized MUST equal the original value, and the same MUST hold for
// YAML.
//
// Implementations SHOULD use the "type alias" pattern to avoid infinite
// recursion when delegating to the standard marshalers:
//
//	func (f Field) MarshalJSON() ([]byte, error) {
//	    if err := f.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", f.TypeName(), err)
//	    }
//	    type field Field
//	    return json.Marshal(field(f))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations for logging and debugging. All model types MUST
// implement Loggable to prevent accidental exposure of sensitive data in
// application logs. In this domain the sensitive data is primarily
// personally identifiable: Contact fields routinely hold mailto addresses,
// and comments may hold names or internal notes.
//
// The Redacted method returns a representation suitable for production
// logging. It MUST hide or mask sensitive portions while preserving enough
// information for troubleshooting. For example, a URL may be redacted to
// its scheme and host, hiding the path, query, and any mailto address.
// Redacted MUST be fast, MUST NOT perform I/O, MUST NOT mutate the
// receiver, and MUST be safe to call concurrently. If a type contains
// nested Loggable values, Redacted SHOULD delegate to their Redacted
// methods so redaction is consistent through the object graph.
//
// The String method returns a human-readable representation that MAY
// include sensitive data. It is intended for development, debugging, and
// test assertions where full visibility is acceptable. String MUST NOT be
// used for production logging; always use Redacted there.
type Loggable interface {
	// Redacted returns a safe string representation suitable for logging
	// in production. This method MUST redact or mask sensitive portions
	// (contact addresses, URL paths) while preserving enough information
	// for debugging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	Redacted() string

	// String returns a human-readable representation of the instance. This
	// method MAY include sensitive data and MUST NOT be used for
	// production logging. Use Redacted instead for logging.
	//
	// This method MUST NOT mutate the receiver, MUST NOT have side
	// effects, and MUST be safe to call concurrently.
	String() string
}

// Identifiable defines the contract for types that can identify themselves
// by a canonical type name. All model types MUST provide a type name to
// enable debugging, logging, and precise error messages.
//
// The type name returned by TypeName MUST be constant for a given type,
// unique within the sectxt domain, in CamelCase (for example, "Field",
// "DateTime", "LineKind"), and without a package prefix. The name
// identifies the type, not the instance, so it MUST NOT vary based on
// field values.
//
// TypeName MUST be fast, MUST NOT allocate, and SHOULD return a string
// constant. It MUST NOT have side effects and MUST be safe to call
// concurrently.
type Identifiable interface {
	// TypeName returns the canonical name of this model type. The name
	// MUST be constant for the type, unique within sectxt, in CamelCase,
	// and without a package prefix.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// are in a zero or empty state. This enables optional field detection and
// conditional logic based on whether an instance contains meaningful data.
//
// An instance is considered zero if all of its fields are at their type's
// zero value and no meaningful data is present. For example, a URL holding
// the empty string is zero, and a Field with no name and no payload is
// zero. For most sectxt types the zero value is valid at the type level
// and means "not set"; whether that is acceptable in context is decided by
// the containing type's Validate method.
//
// IsZero MUST be fast, deterministic, and idempotent. It MUST NOT allocate,
// MUST NOT have side effects, and MUST be safe to call concurrently.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state,
	// meaning it contains no meaningful data.
	IsZero() bool
}

// Comparable defines the contract for types that can be compared for
// equality. This interface is optional but recommended for value types
// that require equality testing in tests, assertions, or business logic.
//
// The Equal method MUST be reflexive, symmetric, transitive, and
// consistent. It SHOULD compare all semantically significant fields; for
// example, two DateTime values are equal only when they denote the same
// instant at the same UTC offset, and two Fields are equal only when name
// and payload both match.
//
// Equal MUST NOT mutate the receiver or the argument, MUST NOT have side
// effects, and MUST be safe to call concurrently.
type Comparable[T any] interface {
	// Equal reports whether this instance is equal to another instance of
	// the same type. It returns true if both instances represent the same
	// logical value, false otherwise.
	Equal(other T) bool
}

// Cloneable defines the contract for types that can create deep copies of
// themselves. This interface is optional; sectxt types are immutable
// values, so most callers can simply copy them. It exists for symmetry
// with generic code that works across model types with reference-typed
// fields (such as the tag sequence held by a preferred-languages Field).
//
// The Clone method MUST create a deep copy: the returned instance shares
// no references with the original, so modifying one never affects the
// other. The cloned instance MUST be valid if the original is valid, and
// cloning MUST be idempotent.
type Cloneable[T any] interface {
	// Clone creates a deep copy of this instance. The returned instance
	// has the same value but shares no references with the original.
	Clone() T
}
