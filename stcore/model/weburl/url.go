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

// Package weburl provides the validated absolute-URL value type used by
// the URL-valued security.txt fields (Acknowledgments, Canonical, Contact,
// Encryption, Hiring, Policy).
//
// This package wraps the standard library's net/url parser behind a
// sectxt-specific type so that a URL, once constructed through ParseURL,
// is known to satisfy the absolute-URL grammar: it parsed cleanly, it
// carries a scheme, and, for schemes that use an authority component, it
// carries a host. Values that net/url would tolerate as bare paths (such
// as "not a url") are rejected here because a security.txt URL MUST be
// absolute.
package weburl

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"
	"wellknown.dev/sectxt/stcore/errors"
	"wellknown.dev/sectxt/stcore/model"
)

// authoritySchemes lists the schemes for which an absolute URL MUST carry
// a non-empty host. These are the "special" schemes of the URL standard
// that use an authority component. Opaque schemes such as mailto and tel
// have no authority and are accepted without a host.
var authoritySchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ftp":   true,
	"ws":    true,
	"wss":   true,
}

// URL represents a validated absolute URL as it appears in the value
// position of a URL-valued security.txt field, for example
// "https://example.com/security" or "mailto:security@example.com".
//
// This type implements the model.Model interface, providing validation,
// serialization to JSON and YAML, safe logging, type identification, and
// zero-value detection. The zero value of URL (empty string "") is valid
// and represents "no URL attached"; whether an empty URL is acceptable in
// context is decided by the containing Field's validation.
//
// A non-zero URL MUST be in normalized form: no leading or trailing ASCII
// control characters or spaces. ParseURL strips those during parsing, the
// same normalization step the URL standard prescribes, which is what lets
// the common "Contact: mailto:..." form (one space after the colon) parse.
// Interior characters are preserved exactly as written; this type never
// re-encodes or canonicalizes the URL beyond the boundary strip.
//
// Example usage:
//
//	u, err := weburl.ParseURL(" https://example.com/security ")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u.String()) // Output: "https://example.com/security"
//	fmt.Println(u.Scheme()) // Output: "https"
type URL string

// ParseURL parses a string into a URL value, normalizing and validating
// the input before returning.
//
// ParseURL first strips leading and trailing ASCII control characters and
// spaces (code points U+0000 through U+0020). The remainder MUST then
// satisfy the absolute-URL grammar: it MUST parse under RFC 3986 rules, it
// MUST carry a scheme, and for the authority-based schemes (http, https,
// ftp, ws, wss) it MUST carry a host. Any violation returns a
// *errors.ParseError whose Reason names the rule that rejected the input;
// failures raised by net/url itself are wrapped and exposed via Unwrap.
//
// The empty string is a valid input and parses to the zero value URL,
// representing "no URL attached". Strings consisting only of whitespace
// likewise parse to the zero value.
//
// This function is pure and has no side effects. It is safe to call
// concurrently from multiple goroutines.
//
// Example:
//
//	u, err := weburl.ParseURL("https://abc.com")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(u) // Output: "https://abc.com"
func ParseURL(s string) (URL, error) {
	normalized := trimC0AndSpace(s)
	if normalized == "" {
		return URL(""), nil
	}

	if err := validateURL(normalized); err != nil {
		return URL(""), err
	}

	return URL(normalized), nil
}

// trimC0AndSpace removes leading and trailing C0 control characters and
// spaces, the boundary strip the URL standard applies before parsing.
func trimC0AndSpace(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r <= ' '
	})
}

// validateURL checks a normalized, non-empty candidate against the
// absolute-URL grammar and returns a *errors.ParseError on violation.
func validateURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return &errors.ParseError{Type: "URL", Value: s, Reason: err.Error(), Err: err}
	}
	if u.Scheme == "" {
		return &errors.ParseError{Type: "URL", Value: s, Reason: "missing URL scheme"}
	}
	if authoritySchemes[u.Scheme] && u.Host == "" {
		return &errors.ParseError{Type: "URL", Value: s, Reason: "missing URL host"}
	}
	return nil
}

// String returns the URL exactly as stored. This method satisfies the
// model.Loggable interface's String requirement.
//
// The returned string MAY contain sensitive data: mailto URLs hold contact
// addresses and paths may hold tokens. Use Redacted for production
// logging.
func (u URL) String() string {
	return string(u)
}

// Redacted returns a safe string representation suitable for logging in
// production environments. Only the scheme and host survive; the path,
// query, fragment, and any opaque part (the address of a mailto URL, most
// importantly) are hidden.
//
// This method satisfies the model.Loggable interface's Redacted
// requirement. For the zero value it returns an empty string, and for a
// value that does not parse it returns "[INVALID]".
//
// Example:
//
//	u := weburl.URL("mailto:security@example.com")
//	log.Info("contact", "url", u.Redacted()) // Output: "mailto:[redacted]"
func (u URL) Redacted() string {
	if u.IsZero() {
		return ""
	}
	parsed, err := url.Parse(string(u))
	if err != nil || parsed.Scheme == "" {
		return "[INVALID]"
	}
	if parsed.Host != "" {
		return parsed.Scheme + "://" + parsed.Host
	}
	return parsed.Scheme + ":[redacted]"
}

// TypeName returns "URL", the canonical name of this model type for error
// messages and debugging. This method satisfies the model.Identifiable
// interface.
func (u URL) TypeName() string {
	return "URL"
}

// IsZero reports whether this URL is the zero value (empty string),
// representing "no URL attached". This method satisfies the
// model.ZeroCheckable interface.
func (u URL) IsZero() bool {
	return u == ""
}

// Equal reports whether this URL is equal to another URL value. The
// comparison is an exact, case-sensitive string comparison: this type
// stores URLs as written, so "https://ABC.com" and "https://abc.com" are
// distinct values even though they name the same host.
func (u URL) Equal(other URL) bool {
	return u == other
}

// Scheme returns the URL's scheme ("https", "mailto"), or an empty string
// for the zero value or a value that does not parse.
func (u URL) Scheme() string {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	return parsed.Scheme
}

// Host returns the URL's host component, or an empty string for the zero
// value, for opaque schemes such as mailto, or for a value that does not
// parse.
func (u URL) Host() string {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return ""
	}
	return parsed.Host
}

// Validate checks that the URL value conforms to the absolute-URL grammar.
// This method satisfies the model.Validatable interface.
//
// Validate returns nil if the URL is either the zero value or a non-empty
// string that is normalized (no leading or trailing control characters or
// spaces) and satisfies the grammar enforced by ParseURL: parseable,
// scheme present, host present for authority-based schemes.
//
// This method is fast, deterministic, and idempotent. It does not mutate
// the receiver and is safe to call concurrently.
func (u URL) Validate() error {
	if u.IsZero() {
		return nil
	}

	str := string(u)
	if str != trimC0AndSpace(str) {
		return &errors.ValidationError{
			Type:   "URL",
			Reason: "not normalized (leading or trailing whitespace)",
			Value:  str,
		}
	}

	return validateURL(str)
}

// MarshalJSON implements json.Marshaler, serializing the URL as a JSON
// string. Validation runs first; an invalid URL fails to marshal rather
// than leaking into serialized output. The zero value marshals to "".
func (u URL) MarshalJSON() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", u.TypeName(), err)
	}
	return json.Marshal(string(u))
}

// UnmarshalJSON implements json.Unmarshaler, deserializing a JSON string
// into a URL value via ParseURL. Input is normalized (boundary whitespace
// stripped) and validated; malformed values are rejected at the boundary.
// The empty JSON string unmarshals to the zero value.
func (u *URL) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "URL", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseURL(str)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, serializing the URL as a YAML
// scalar. Validation runs first; an invalid URL fails to marshal. The
// zero value marshals to an empty scalar.
func (u URL) MarshalYAML() (any, error) {
	if err := u.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", u.TypeName(), err)
	}
	return string(u), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, deserializing a YAML scalar
// into a URL value via ParseURL. Input is normalized and validated;
// malformed values are rejected at the boundary.
func (u *URL) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "URL", Data: []byte(node.Value), Reason: err.Error()}
	}

	parsed, err := ParseURL(str)
	if err != nil {
		return err
	}

	*u = parsed
	return nil
}

// Compile-time verification that URL implements model.Model.
var _ model.Model = (*URL)(nil)
