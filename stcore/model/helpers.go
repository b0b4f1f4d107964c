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

package model

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// ValidateAll validates a slice of models and returns all validation
// errors encountered, not just the first one. This is the natural helper
// for a caller that has parsed a whole security.txt document line by line
// and wants a complete diagnosis of every invalid entry at once.
//
// Each model's Validate method is invoked in order. Failures are wrapped
// with the model's position in the slice (zero-indexed) and its TypeName,
// then aggregated into a single combined error using rxmerr.Collector. The
// function always processes the entire slice even when early elements
// fail, ensuring complete error reporting.
//
// Empty slices are considered valid and return nil.
//
// Example usage for batch validation of parsed fields:
//
//	fields := []txt.Field{contact, expires, languages}
//	if err := model.ValidateAll(fields); err != nil {
//	    log.Error("document validation failed", "error", err)
//	}
func ValidateAll[T Model](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// FilterZero returns a new slice containing only non-zero models, removing
// every instance where IsZero reports true. Callers use this to drop
// "not set" placeholder values from a parsed document before serializing
// or iterating it.
//
// The returned slice is always a new allocation and never shares backing
// storage with the input, so modifications to either slice do not affect
// the other. If all models in the input are zero, or the input is empty or
// nil, the function returns an empty non-nil slice. FilterZero does not
// validate models; it only checks for zero values.
func FilterZero[T Model](models []T) []T {
	result := make([]T, 0, len(models))

	for _, m := range models {
		if !m.IsZero() {
			result = append(result, m)
		}
	}

	return result
}

// MustValidate validates a model and panics if validation fails. It exists
// for contexts where an invalid model is a programming error rather than a
// recoverable runtime condition: test fixtures, package initialization,
// and hardcoded constants.
//
// If validation succeeds, MustValidate returns the model unchanged,
// allowing inline initialization patterns. If validation fails, it panics
// with a message that includes the model's TypeName and the validation
// error.
//
// Callers MUST NOT use MustValidate on data that originates outside the
// program (documents being parsed, configuration, API payloads); those
// paths return errors.
//
// Example usage in test setup where invalid data indicates a test bug:
//
//	f := model.MustValidate(txt.Field{Name: txt.NameContact, URL: u})
func MustValidate[T Model](m T) T {
	if err := m.Validate(); err != nil {
		panic(fmt.Sprintf("model validation failed for %s: %v", m.TypeName(), err))
	}
	return m
}

// SafeString returns a string representation of a model that is safe for
// logging by default but can optionally include full details when
// explicitly requested.
//
// When unsafe is false (the recommended value for production logging),
// SafeString returns the model's Redacted form, which masks contact
// addresses and other sensitive portions. When unsafe is true, it returns
// the model's full String form, which MAY include PII; callers MUST only
// request that in controlled debugging scenarios.
//
// Keeping the choice behind a single call site with an explicit boolean
// makes logging behavior easy to audit.
//
//	log.Info("parsed", "field", model.SafeString(field, false)) // Redacted()
//	log.Debug("parsed", "field", model.SafeString(field, true)) // String() (UNSAFE)
func SafeString[T Model](m T, unsafe bool) string {
	if unsafe {
		return m.String()
	}
	return m.Redacted()
}

// ToJSON converts a model to JSON bytes after validating that it is in a
// consistent state. Validation failures are returned, wrapped with the
// model's TypeName, and no marshaling is attempted; this guarantees that
// invalid values never reach the JSON encoder.
//
// Callers SHOULD use ToJSON instead of calling json.Marshal directly when
// they need the additional guarantee that only valid models are
// serialized. The model's own MarshalJSON is still invoked, so custom
// representations are preserved.
func ToJSON[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return json.Marshal(m)
}

// ToYAML converts a model to YAML bytes after validating that it is in a
// consistent state. Validation failures are returned, wrapped with the
// model's TypeName, and no marshaling is attempted.
//
// Callers SHOULD use ToYAML instead of calling yaml.Marshal directly when
// they need the additional guarantee that only valid models are
// serialized. The model's own MarshalYAML is still invoked, so custom
// representations are preserved.
func ToYAML[T Model](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}
	return yaml.Marshal(m)
}

// FromJSON parses JSON bytes into a model and validates the result,
// rejecting malformed or invalid data at the boundary instead of letting
// it propagate. Unmarshal errors are reported first; when unmarshaling
// succeeds but the resulting model fails validation, that validation error
// is returned and the model variable MUST NOT be used.
//
// Callers MUST provide a pointer to a zero-initialized model variable.
//
//	var f txt.Field
//	if err := model.FromJSON(data, &f); err != nil {
//	    return err
//	}
func FromJSON[T Model](data []byte, m *T) error {
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// FromYAML parses YAML bytes into a model and validates the result,
// rejecting malformed or invalid data at the boundary. Unmarshal errors
// are reported first; when unmarshaling succeeds but the resulting model
// fails validation, that validation error is returned and the model
// variable MUST NOT be used.
//
// Callers MUST provide a pointer to a zero-initialized model variable.
//
//	var l txt.Line
//	if err := model.FromYAML(data, &l); err != nil {
//	    return err
//	}
func FromYAML[T Model](data []byte, m *T) error {
	if err := yaml.Unmarshal(data, m); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	if err := (*m).Validate(); err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	return nil
}

// Clone creates a deep copy of a model by serializing it to JSON and
// deserializing into a new instance. The JSON round-trip naturally copies
// nested slices (such as a preferred-languages tag sequence) by value, so
// the clone shares no references with the original.
//
// The cost is one encode/decode cycle; types that are cloned on hot paths
// SHOULD implement Cloneable with hand-written copy logic instead. If
// either half of the round-trip fails, Clone returns the error and a
// zero-value model that MUST NOT be used.
func Clone[T Model](m T) (T, error) {
	var zero T

	data, err := json.Marshal(m)
	if err != nil {
		return zero, fmt.Errorf("clone marshal failed: %w", err)
	}

	var clone T
	if err := json.Unmarshal(data, &clone); err != nil {
		return zero, fmt.Errorf("clone unmarshal failed: %w", err)
	}

	return clone, nil
}

// Equal compares two models for equality by serializing both to JSON and
// comparing the output byte for byte. This generic fallback works for any
// Model without type-specific comparison logic; types with more precise
// semantics (DateTime's instant-plus-offset equality, for instance)
// implement Comparable and SHOULD be compared through their own Equal
// method instead.
//
// If either marshaling fails, Equal returns false rather than mistaking a
// serialization error for inequality. Unexported fields do not participate
// in the comparison because they do not appear in JSON output.
func Equal[T Model](a, b T) bool {
	dataA, errA := json.Marshal(a)
	dataB, errB := json.Marshal(b)

	if errA != nil || errB != nil {
		return false
	}

	return string(dataA) == string(dataB)
}
