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

package document

import (
	"context"
)

// ✏️ Document is the cursor-level editing surface the header insertion needs.
// Line numbers start at 1. Moving the cursor clears any selection.
type Document interface {
	// LineCount is the number of lines; an empty document has one empty line.
	LineCount() int
	// LineText returns the text of line n without its line break.
	LineText(n int) string
	// CurrentLine is the line the cursor is on.
	CurrentLine() int

	StartOfDocument()
	StartOfLine()
	LineDown()

	// SelectRestOfLine selects from the cursor to the end of its line.
	SelectRestOfLine()
	// SelectCharsRight extends the selection count characters to the right. A
	// line break counts as one character.
	SelectCharsRight(count int)
	DeleteSelection()

	// InsertText replaces the selection, if any, with text and leaves the cursor
	// after it.
	InsertText(text string)
	InsertNewline()

	Save(ctx context.Context) error
}

// 🎯 ExactInserter is implemented by documents that report how many lines an
// insertion produced. Headers are inserted into them without the marker
// scheme.
type ExactInserter interface {
	InsertTextExact(text string) (lines int)
}
