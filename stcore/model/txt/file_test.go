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

package txt_test

import (
	"strings"
	"testing"

	"wellknown.dev/sectxt/stcore/model/txt"
)

func TestFileConstants(t *testing.T) {
	if txt.Filename != "security.txt" {
		t.Errorf("Filename = %q, want %q", txt.Filename, "security.txt")
	}
	if txt.WellKnownPath != "/.well-known/security.txt" {
		t.Errorf("WellKnownPath = %q, want %q", txt.WellKnownPath, "/.well-known/security.txt")
	}
	if txt.MIMEType != "text/plain" {
		t.Errorf("MIMEType = %q, want %q", txt.MIMEType, "text/plain")
	}
	if !strings.HasSuffix(txt.WellKnownPath, txt.Filename) {
		t.Error("WellKnownPath should end with Filename")
	}
}
