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

// Package scan infers namespace, class and interface names from the leading
// lines of a source document. It is a token scan, not a parser: a line is split
// on whitespace and the token after a keyword is taken as the name.
package scan

import (
	"strings"

	"github.com/walteh/addheader/pkg/header"
)

// 🔑 Keywords whose following token names a declaration
const (
	NamespaceKeyword = "namespace"
	ClassKeyword     = "class"
	InterfaceKeyword = "interface"
)

// DefaultCommentTokens marks the lines skipped by the default scanner.
var DefaultCommentTokens = []string{"//"}

// 📖 LineSource is a read-only view of a document's lines, numbered from 1.
type LineSource interface {
	LineCount() int
	LineText(n int) string
}

// Lines adapts a slice to LineSource.
type Lines []string

func (l Lines) LineCount() int {
	return len(l)
}

func (l Lines) LineText(n int) string {
	if n < 1 || n > len(l) {
		return ""
	}
	return l[n-1]
}

// 🔍 Scanner walks a document from the top looking for declarations
type Scanner struct {
	commentTokens []string
	limit         int
}

// Option configures a Scanner
type Option func(*Scanner)

// WithCommentTokens replaces the tokens that mark a line as a comment. An
// empty list keeps the defaults.
func WithCommentTokens(tokens ...string) Option {
	return func(s *Scanner) {
		if len(tokens) > 0 {
			s.commentTokens = tokens
		}
	}
}

// WithLimit stops the scan after n lines. Zero means no limit.
func WithLimit(n int) Option {
	return func(s *Scanner) {
		s.limit = n
	}
}

// New creates a scanner
func New(opts ...Option) *Scanner {
	s := &Scanner{
		commentTokens: DefaultCommentTokens,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan runs the default scanner over src.
func Scan(src LineSource) header.DocumentMetadata {
	return New().Scan(src)
}

// Scan reads src from line 1 until the namespace and either a class or an
// interface are known, or the lines run out. Comment lines are skipped whole.
// The first name found for a field is kept.
func (s *Scanner) Scan(src LineSource) header.DocumentMetadata {
	var meta header.DocumentMetadata

	last := src.LineCount()
	if s.limit > 0 && s.limit < last {
		last = s.limit
	}

	for n := 1; n <= last; n++ {
		line := src.LineText(n)
		if s.isComment(line) {
			continue
		}

		tokens := strings.Fields(line)

		if meta.Namespace == "" {
			meta.Namespace = FindName(tokens, NamespaceKeyword)
		}
		if meta.Class == "" {
			meta.Class = FindName(tokens, ClassKeyword)
		}
		if meta.Interface == "" {
			meta.Interface = FindName(tokens, InterfaceKeyword)
		}

		if meta.Complete() {
			break
		}
	}

	return meta
}

func (s *Scanner) isComment(line string) bool {
	for _, token := range s.commentTokens {
		if token != "" && strings.Contains(line, token) {
			return true
		}
	}
	return false
}

// FindName returns the sanitized token following the first exact keyword
// match, or empty when the keyword is absent or ends the line.
func FindName(tokens []string, keyword string) string {
	for i, token := range tokens {
		if token != keyword {
			continue
		}
		if i+1 >= len(tokens) {
			return ""
		}
		return Sanitize(tokens[i+1])
	}
	return ""
}

// Sanitize drops every character that is not an ASCII letter, digit,
// underscore or period.
func Sanitize(token string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
			return r
		}
		return -1
	}, token)
}
