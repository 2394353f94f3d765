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
	"time"

	"github.com/walteh/addheader/pkg/datefmt"
	"github.com/walteh/addheader/pkg/text"
)

// 📝 Rendered is a resolved header
type Rendered struct {
	// Text is the header with every placeholder resolved
	Text string
	// Marked is Text with Marker at the start of every line
	Marked string
}

// Lines is the number of document lines the header occupies.
func (r Rendered) Lines() int {
	return LineCount(r.Text)
}

// 🔧 Resolver turns templates into header text
type Resolver struct {
	now               func() time.Time
	defaultDateFormat string
	replacer          text.TextReplacer
}

// Option configures a Resolver
type Option func(*Resolver)

// WithClock sets the source of the current instant.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		r.now = now
	}
}

// WithDefaultDateFormat sets the format used by a bare {date} token.
func WithDefaultDateFormat(format string) Option {
	return func(r *Resolver) {
		r.defaultDateFormat = format
	}
}

// 🏭 NewResolver creates a resolver using the wall clock and the general date format
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		now:               time.Now,
		defaultDateFormat: datefmt.General,
		replacer:          text.NewSimpleTextReplacer(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the marked header text for template.
func (r *Resolver) Resolve(template string, meta DocumentMetadata, user UserIdentity) string {
	return r.Render(template, meta, user).Marked
}

// Render resolves template and returns both the plain and the marked text.
func (r *Resolver) Render(template string, meta DocumentMetadata, user UserIdentity) Rendered {
	resolved := r.Unmarked(template, meta, user)
	return Rendered{
		Text:   resolved,
		Marked: Protect(resolved),
	}
}

// Unmarked resolves the date token first, then the field placeholders.
func (r *Resolver) Unmarked(template string, meta DocumentMetadata, user UserIdentity) string {
	resolved := r.substituteDate(template)

	result := r.replacer.ReplaceText(resolved, []text.ReplacementRule{
		{FromText: NamespacePlaceholder, ToText: meta.Namespace},
		{FromText: ClassInterfacePlaceholder, ToText: meta.ClassOrInterface()},
		{FromText: AuthorPlaceholder, ToText: user.Name},
		{FromText: EmailPlaceholder, ToText: user.Email},
	})

	return result.ModifiedContent
}

func (r *Resolver) substituteDate(template string) string {
	token, format, ok := FindDateToken(template)
	if !ok {
		return template
	}
	if format == "" {
		format = r.defaultDateFormat
	}

	result := r.replacer.ReplaceText(template, []text.ReplacementRule{
		{FromText: token, ToText: datefmt.Format(r.now(), format)},
	})
	return result.ModifiedContent
}

// FindDateToken locates the first date token of template. token is the whole
// token, braces included; format is what follows the character after {date, or
// empty when the token is too short to carry a format. ok is false when there
// is no token or it is never closed. The first } ends the token, so a format
// cannot contain one.
func FindDateToken(template string) (token, format string, ok bool) {
	start := strings.Index(template, DatePlaceholder)
	if start < 0 {
		return "", "", false
	}

	end := strings.Index(template[start:], "}")
	if end < 0 {
		return "", "", false
	}
	end += start

	token = template[start : end+1]
	// a format needs at least two characters after the separator
	if end-start > len(DatePlaceholder)+2 {
		format = template[start+len(DatePlaceholder)+1 : end]
	}

	return token, format, true
}
