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

package model_test

import (
	"strings"
	"testing"

	"wellknown.dev/sectxt/stcore/model"
	"wellknown.dev/sectxt/stcore/model/txt"
	"wellknown.dev/sectxt/stcore/model/weburl"
)

func mustParseField(t *testing.T, s string) txt.Field {
	t.Helper()
	f, err := txt.ParseField(s)
	if err != nil {
		t.Fatalf("ParseField(%q) error = %v", s, err)
	}
	return f
}

func TestValidateAll(t *testing.T) {
	t.Run("all valid", func(t *testing.T) {
		fields := []txt.Field{
			mustParseField(t, "Contact: https://example.com"),
			mustParseField(t, "Preferred-Languages:en,fr"),
		}
		if err := model.ValidateAll(fields); err != nil {
			t.Errorf("ValidateAll() error = %v, want nil", err)
		}
	})

	t.Run("empty slice", func(t *testing.T) {
		if err := model.ValidateAll([]txt.Field{}); err != nil {
			t.Errorf("ValidateAll() error = %v, want nil", err)
		}
	})

	t.Run("reports every failure with position", func(t *testing.T) {
		fields := []txt.Field{
			{Name: txt.NameContact},
			mustParseField(t, "Contact: https://example.com"),
			{Name: txt.NameExpires},
		}
		err := model.ValidateAll(fields)
		if err == nil {
			t.Fatal("ValidateAll() expected error")
		}
		msg := err.Error()
		if !strings.Contains(msg, "model[0]") || !strings.Contains(msg, "model[2]") {
			t.Errorf("error = %q, want both failing positions reported", msg)
		}
		if strings.Contains(msg, "model[1]") {
			t.Errorf("error = %q, valid element should not be reported", msg)
		}
	})
}

func TestFilterZero(t *testing.T) {
	contact := mustParseField(t, "Contact: https://example.com")
	fields := []txt.Field{{}, contact, {}}

	got := model.FilterZero(fields)
	if len(got) != 1 {
		t.Fatalf("FilterZero() len = %d, want 1", len(got))
	}
	if !got[0].Equal(contact) {
		t.Errorf("FilterZero()[0] = %v, want %v", got[0], contact)
	}

	if got := model.FilterZero([]txt.Field{}); got == nil || len(got) != 0 {
		t.Errorf("FilterZero(empty) = %v, want empty non-nil slice", got)
	}
}

func TestMustValidate(t *testing.T) {
	t.Run("valid passes through", func(t *testing.T) {
		contact := mustParseField(t, "Contact: https://example.com")
		if got := model.MustValidate(contact); !got.Equal(contact) {
			t.Errorf("MustValidate() = %v, want %v", got, contact)
		}
	})

	t.Run("invalid panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustValidate() should panic on an invalid model")
			}
		}()
		model.MustValidate(txt.Field{Name: txt.NameContact})
	})
}

func TestSafeString(t *testing.T) {
	contact := mustParseField(t, "Contact: mailto:security@example.com")

	safe := model.SafeString(contact, false)
	if strings.Contains(safe, "security@example.com") {
		t.Errorf("SafeString(unsafe=false) = %q leaks the address", safe)
	}

	unsafe := model.SafeString(contact, true)
	if !strings.Contains(unsafe, "security@example.com") {
		t.Errorf("SafeString(unsafe=true) = %q should include the full value", unsafe)
	}
}

func TestToJSON_FromJSON(t *testing.T) {
	original := mustParseField(t, "Preferred-Languages:en,fr,de")

	data, err := model.ToJSON(original)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded txt.Field
	if err := model.FromJSON(data, &decoded); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Errorf("JSON round-trip failed: got %v, want %v", decoded, original)
	}
}

func TestToJSON_Invalid(t *testing.T) {
	if _, err := model.ToJSON(txt.Field{Name: txt.NameContact}); err == nil {
		t.Error("ToJSON() should reject an invalid model")
	}
}

func TestFromJSON_Invalid(t *testing.T) {
	var f txt.Field
	if err := model.FromJSON([]byte(`{"name":"contact"}`), &f); err == nil {
		t.Error("FromJSON() should reject data that fails validation")
	}
	if err := model.FromJSON([]byte(`{`), &f); err == nil {
		t.Error("FromJSON() should reject malformed JSON")
	}
}

func TestToYAML_FromYAML(t *testing.T) {
	original := mustParseField(t, "Contact: https://example.com/security")

	data, err := model.ToYAML(original)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	var decoded txt.Field
	if err := model.FromYAML(data, &decoded); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	if !decoded.Equal(original) {
		t.Errorf("YAML round-trip failed: got %v, want %v", decoded, original)
	}
}

func TestClone(t *testing.T) {
	original := mustParseField(t, "Preferred-Languages:en,fr")

	clone, err := model.Clone(original)
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !clone.Equal(original) {
		t.Errorf("Clone() = %v, want %v", clone, original)
	}

	clone.Languages[0] = "de"
	if original.Languages[0] != "en" {
		t.Error("Clone() shares references with the original")
	}
}

func TestEqual(t *testing.T) {
	a := mustParseField(t, "Contact: https://example.com")
	b := mustParseField(t, "Contact: https://example.com")
	c := mustParseField(t, "Contact: https://other.com")

	if !model.Equal(a, b) {
		t.Error("Equal() should report identical models equal")
	}
	if model.Equal(a, c) {
		t.Error("Equal() should report different models unequal")
	}
}

func TestEqual_DifferentModelTypes(t *testing.T) {
	u := weburl.URL("https://example.com")
	v := weburl.URL("https://example.com")
	if !model.Equal(u, v) {
		t.Error("Equal() should work across model types")
	}
}
