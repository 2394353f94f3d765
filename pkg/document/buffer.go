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
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gofrs/flock"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// position is a zero-based line and byte column
type position struct {
	line int
	col  int
}

func (p position) before(o position) bool {
	return p.line < o.line || (p.line == o.line && p.col < o.col)
}

// 📄 Buffer is an in-memory Document, optionally backed by a file.
type Buffer struct {
	path  string
	mode  os.FileMode
	lock  *flock.Flock
	eol   string
	lines []string

	cursor position
	anchor *position
}

var _ Document = (*Buffer)(nil)

// NewBuffer creates a buffer holding text that is not backed by a file. Lines
// are joined back with the line ending most of text uses.
func NewBuffer(text string) *Buffer {
	b := &Buffer{
		eol:  LineEnding(text),
		mode: 0o644,
	}
	b.lines = b.split(text)
	return b
}

// LineEnding returns "\r\n" when most line breaks in text are CRLF, and "\n"
// otherwise.
func LineEnding(text string) string {
	crlf := strings.Count(text, "\r\n")
	if crlf > strings.Count(text, "\n")-crlf {
		return "\r\n"
	}
	return "\n"
}

// split breaks text into lines. In a CRLF buffer the carriage returns belong
// to the line ending, not to the line.
func (b *Buffer) split(text string) []string {
	lines := strings.Split(text, "\n")
	if b.eol == "\r\n" {
		for i, line := range lines {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// Open reads path into a buffer and holds an advisory lock on path + ".lock"
// until Close. Open fails if another process holds the lock.
func Open(ctx context.Context, path string) (*Buffer, error) {
	logger := zerolog.Ctx(ctx)

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, errors.Errorf("locking %s: %w", path, err)
	}
	if !locked {
		return nil, errors.Errorf("locking %s: held by another process", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		releaseLock(lock)
		return nil, errors.Errorf("reading file info: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		releaseLock(lock)
		return nil, errors.Errorf("reading file: %w", err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("opened document")

	b := NewBuffer(string(data))
	b.path = path
	b.mode = info.Mode().Perm()
	b.lock = lock
	return b, nil
}

func releaseLock(lock *flock.Flock) {
	_ = lock.Unlock()
	_ = os.Remove(lock.Path())
}

// Close releases the file lock. It is safe to call on unbacked buffers and
// more than once.
func (b *Buffer) Close() error {
	if b.lock == nil {
		return nil
	}
	lock := b.lock
	b.lock = nil
	if err := lock.Unlock(); err != nil {
		return errors.Errorf("unlocking %s: %w", b.path, err)
	}
	if err := os.Remove(lock.Path()); err != nil && !os.IsNotExist(err) {
		return errors.Errorf("removing lock file: %w", err)
	}
	return nil
}

// Path is the backing file, empty for unbacked buffers.
func (b *Buffer) Path() string {
	return b.path
}

// Text returns the whole document.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, b.eol)
}

// LineEnding is the line ending the buffer writes between lines.
func (b *Buffer) LineEnding() string {
	return b.eol
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) LineText(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

func (b *Buffer) CurrentLine() int {
	return b.cursor.line + 1
}

func (b *Buffer) StartOfDocument() {
	b.anchor = nil
	b.cursor = position{}
}

func (b *Buffer) StartOfLine() {
	b.anchor = nil
	b.cursor.col = 0
}

func (b *Buffer) LineDown() {
	b.anchor = nil
	if b.cursor.line+1 < len(b.lines) {
		b.cursor.line++
	}
	if n := len(b.lines[b.cursor.line]); b.cursor.col > n {
		b.cursor.col = n
	}
}

func (b *Buffer) startSelection() {
	if b.anchor == nil {
		anchor := b.cursor
		b.anchor = &anchor
	}
}

func (b *Buffer) SelectRestOfLine() {
	b.startSelection()
	b.cursor.col = len(b.lines[b.cursor.line])
}

func (b *Buffer) SelectCharsRight(count int) {
	b.startSelection()
	for i := 0; i < count; i++ {
		line := b.lines[b.cursor.line]
		switch {
		case b.cursor.col < len(line):
			_, size := utf8.DecodeRuneInString(line[b.cursor.col:])
			b.cursor.col += size
		case b.cursor.line+1 < len(b.lines):
			b.cursor.line++
			b.cursor.col = 0
		default:
			return
		}
	}
}

func (b *Buffer) DeleteSelection() {
	if b.anchor == nil {
		return
	}
	start, end := *b.anchor, b.cursor
	if end.before(start) {
		start, end = end, start
	}
	b.anchor = nil

	merged := b.lines[start.line][:start.col] + b.lines[end.line][end.col:]
	b.lines = append(b.lines[:start.line+1], b.lines[end.line+1:]...)
	b.lines[start.line] = merged
	b.cursor = start
}

func (b *Buffer) InsertText(text string) {
	b.DeleteSelection()

	line := b.lines[b.cursor.line]
	head, tail := line[:b.cursor.col], line[b.cursor.col:]

	inserted := b.split(text)
	lastCol := len(inserted[len(inserted)-1])
	if len(inserted) == 1 {
		lastCol += len(head)
	}
	inserted[0] = head + inserted[0]
	inserted[len(inserted)-1] += tail

	lines := make([]string, 0, len(b.lines)+len(inserted)-1)
	lines = append(lines, b.lines[:b.cursor.line]...)
	lines = append(lines, inserted...)
	lines = append(lines, b.lines[b.cursor.line+1:]...)
	b.lines = lines

	b.cursor = position{line: b.cursor.line + len(inserted) - 1, col: lastCol}
}

func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// Save writes the buffer back to its file through a temporary file in the same
// directory, so readers never see a partial write.
func (b *Buffer) Save(ctx context.Context) error {
	if b.path == "" {
		return errors.New("buffer has no backing file")
	}

	dir := filepath.Dir(b.path)
	tmp, err := os.CreateTemp(dir, ".addheader-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(b.Text()); err != nil {
		tmp.Close()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, b.mode); err != nil {
		return errors.Errorf("setting file mode: %w", err)
	}
	if err := os.Rename(tmpPath, b.path); err != nil {
		return errors.Errorf("replacing %s: %w", b.path, err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", b.path).Int("lines", len(b.lines)).Msg("saved document")
	return nil
}
