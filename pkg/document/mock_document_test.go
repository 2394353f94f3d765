package document

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockDocument struct {
	mock.Mock
}

var _ Document = (*mockDocument)(nil)

func (m *mockDocument) LineCount() int { return m.Called().Int(0) }
func (m *mockDocument) LineText(n int) string { return m.Called(n).String(0) }
func (m *mockDocument) CurrentLine() int { return m.Called().Int(0) }
func (m *mockDocument) StartOfDocument() { m.Called() }
func (m *mockDocument) StartOfLine() { m.Called() }
func (m *mockDocument) LineDown() { m.Called() }
func (m *mockDocument) SelectRestOfLine() { m.Called() }
func (m *mockDocument) SelectCharsRight(count int) { m.Called(count) }
func (m *mockDocument) DeleteSelection() { m.Called() }
func (m *mockDocument) InsertText(text string) { m.Called(text) }
func (m *mockDocument) InsertNewline() { m.Called() }
func (m *mockDocument) Save(ctx context.Context) error { return m.Called(ctx).Error(0) }

// exactDocument wraps a Buffer and reports inserted line counts
type exactDocument struct {
	*Buffer
	inserted []string
}

func (d *exactDocument) InsertTextExact(text string) int {
	d.inserted = append(d.inserted, text)
	before := d.LineCount()
	d.InsertText(text)
	return d.LineCount() - before + 1
}
