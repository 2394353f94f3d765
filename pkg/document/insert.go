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

	"github.com/rs/zerolog"
	"github.com/walteh/addheader/pkg/header"
)

// InsertHeader writes a rendered header at the top of doc followed by two
// blank lines.
//
// The marked text goes in first; then the marker is deleted from the start of
// exactly rendered.Lines() lines from the top. This keeps the header on the
// lines it was given whatever the document does with line breaks on insert.
// Documents implementing ExactInserter receive the plain text instead.
func InsertHeader(ctx context.Context, doc Document, rendered header.Rendered) {
	logger := zerolog.Ctx(ctx)

	doc.StartOfDocument()
	doc.InsertNewline()
	doc.StartOfDocument()

	if exact, ok := doc.(ExactInserter); ok {
		lines := exact.InsertTextExact(rendered.Text)
		doc.InsertNewline()
		doc.InsertNewline()
		logger.Debug().Int("lines", lines).Msg("inserted header")
		return
	}

	doc.InsertText(rendered.Marked)
	doc.InsertNewline()
	doc.InsertNewline()

	doc.StartOfDocument()
	for i := 0; i < rendered.Lines(); i++ {
		doc.StartOfLine()
		doc.SelectCharsRight(len(header.Marker))
		doc.DeleteSelection()
		doc.LineDown()
	}

	logger.Debug().Int("lines", rendered.Lines()).Msg("inserted marked header")
}
