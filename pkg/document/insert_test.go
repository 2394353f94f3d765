package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/walteh/addheader/pkg/header"
)

func render(text string) header.Rendered {
	return header.Rendered{Text: text, Marked: header.Protect(text)}
}

func TestInsertHeader(t *testing.T) {
	tests := []struct {
		name     string
		document string
		header   string
		want     string
	}{
		{
			name:     "single_line_header",
			document: "namespace N\nclass C",
			header:   "// header",
			want:     "// header\n\n\nnamespace N\nclass C",
		},
		{
			name:     "multi_line_header",
			document: "namespace N",
			header:   "// one\n// two\n// three",
			want:     "// one\n// two\n// three\n\n\nnamespace N",
		},
		{
			name:     "header_with_trailing_newline",
			document: "class C",
			header:   "// one\n",
			want:     "// one\n\n\n\nclass C",
		},
		{
			name:     "first_content_line_starts_like_marker",
			document: "//--$$%%payload",
			header:   "// h",
			want:     "// h\n\n\n//--$$%%payload",
		},
		{
			name:     "crlf_document",
			document: "namespace N\r\nclass C\r\n",
			header:   "// one\n// two",
			want:     "// one\r\n// two\r\n\r\n\r\nnamespace N\r\nclass C\r\n",
		},
		{
			name:     "mostly_lf_document_keeps_stray_cr",
			document: "namespace N\r\nclass C\n{\n}\n",
			header:   "// h",
			want:     "// h\n\n\nnamespace N\r\nclass C\n{\n}\n",
		},
		{
			name:     "empty_document",
			document: "",
			header:   "// h1\n// h2",
			want:     "// h1\n// h2\n\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.document)
			InsertHeader(context.Background(), b, render(tt.header))
			assert.Equal(t, tt.want, b.Text())
		})
	}
}

func TestInsertHeader_CallSequence(t *testing.T) {
	doc := &mockDocument{}
	rendered := render("a\nb")

	mock.InOrder(
		doc.On("StartOfDocument").Return().Once(),
		doc.On("InsertNewline").Return().Once(),
		doc.On("StartOfDocument").Return().Once(),
		doc.On("InsertText", "//--$$%%a\n//--$$%%b").Return().Once(),
		doc.On("InsertNewline").Return().Twice(),
		doc.On("StartOfDocument").Return().Once(),
		doc.On("StartOfLine").Return().Once(),
		doc.On("SelectCharsRight", 8).Return().Once(),
		doc.On("DeleteSelection").Return().Once(),
		doc.On("LineDown").Return().Once(),
		doc.On("StartOfLine").Return().Once(),
		doc.On("SelectCharsRight", 8).Return().Once(),
		doc.On("DeleteSelection").Return().Once(),
		doc.On("LineDown").Return().Once(),
	)

	InsertHeader(context.Background(), doc, rendered)

	doc.AssertExpectations(t)
	doc.AssertNumberOfCalls(t, "DeleteSelection", 2)
}

func TestInsertHeader_ExactInserterSkipsMarker(t *testing.T) {
	doc := &exactDocument{Buffer: NewBuffer("class C")}

	InsertHeader(context.Background(), doc, render("// a\n// b"))

	assert.Equal(t, []string{"// a\n// b"}, doc.inserted)
	assert.Equal(t, "// a\n// b\n\n\nclass C", doc.Text())
	assert.NotContains(t, doc.Text(), header.Marker)
}
