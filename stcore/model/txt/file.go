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

// Location and transport constants for security.txt documents.
//
// These values come from RFC 9116 and form the stable, external contract
// between publishers and consumers of the file. Tools that fetch or serve
// security.txt documents SHOULD use these constants rather than repeating
// the literals.
const (
	// Filename is the file name under which a security.txt document is
	// published.
	Filename = "security.txt"

	// WellKnownPath is the path at which consumers look the document up,
	// relative to the origin's root.
	WellKnownPath = "/.well-known/security.txt"

	// MIMEType is the media type a server SHOULD use when serving the
	// document.
	MIMEType = "text/plain"
)
