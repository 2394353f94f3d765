// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package header

import (
	"strings"
)

// Marker prefixes every line of a header while it is being inserted. It is
// removed from exactly as many lines as the header has once the text is in
// place.
const Marker = "//--$$%%"

// Protect prefixes every line of text, the first one included, with Marker.
func Protect(text string) string {
	return Marker + strings.ReplaceAll(text, "\n", "\n"+Marker)
}

// Strip removes one leading Marker from every line of text. Strip(Protect(s))
// is s for any s.
func Strip(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, Marker)
	}
	return strings.Join(lines, "\n")
}

// LineCount is the number of lines text occupies once inserted.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
