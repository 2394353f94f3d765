package header

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, time.October, 16, 14, 5, 9, 0, time.UTC)

func fixedResolver(opts ...Option) *Resolver {
	return NewResolver(append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)...)
}

func TestResolver_Unmarked(t *testing.T) {
	meta := DocumentMetadata{Namespace: "N", Interface: "I"}
	user := UserIdentity{Name: "A", Email: "a@x.com"}

	tests := []struct {
		name     string
		template string
		meta     DocumentMetadata
		want     string
	}{
		{
			name:     "all_fields",
			template: "{namespace}/{class-interface} by {author} <{email}>",
			meta:     meta,
			want:     "N/I by A <a@x.com>",
		},
		{
			name:     "class_wins_over_interface",
			template: "{class-interface}",
			meta:     DocumentMetadata{Class: "C", Interface: "I"},
			want:     "C",
		},
		{
			name:     "no_class_or_interface",
			template: "[{class-interface}]",
			meta:     DocumentMetadata{Namespace: "N"},
			want:     "[]",
		},
		{
			name:     "repeated_placeholders",
			template: "{author} {author}",
			meta:     meta,
			want:     "A A",
		},
		{
			name:     "date_with_format",
			template: "// {date:yyyy}",
			meta:     meta,
			want:     "// 2026",
		},
		{
			name:     "date_default_format",
			template: "// {date}",
			meta:     meta,
			want:     "// 10/16/2026 14:05:09",
		},
		{
			name:     "date_token_repeated",
			template: "{date:dd.MM.yyyy} and {date:dd.MM.yyyy}",
			meta:     meta,
			want:     "16.10.2026 and 16.10.2026",
		},
		{
			name:     "only_first_date_token_is_resolved",
			template: "{date:yyyy} {date:MM}",
			meta:     meta,
			want:     "2026 {date:MM}",
		},
		{
			name:     "single_character_format_falls_back_to_default",
			template: "{date:d}",
			meta:     meta,
			want:     "10/16/2026 14:05:09",
		},
		{
			name:     "unclosed_date_token_left_alone",
			template: "{namespace} {date:yyyy",
			meta:     meta,
			want:     "N {date:yyyy",
		},
		{
			name:     "multiline",
			template: "// {namespace}\n// {author}\n",
			meta:     meta,
			want:     "// N\n// A\n",
		},
		{
			name:     "values_with_regex_metacharacters",
			template: "{namespace}",
			meta:     DocumentMetadata{Namespace: `$1.\d+`},
			want:     `$1.\d+`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := fixedResolver()
			assert.Equal(t, tt.want, r.Unmarked(tt.template, tt.meta, user))
		})
	}
}

func TestResolver_DefaultDateFormatOption(t *testing.T) {
	r := fixedResolver(WithDefaultDateFormat("yyyy-MM-dd"))
	assert.Equal(t, "2026-10-16", r.Unmarked("{date}", DocumentMetadata{}, NewUserIdentity("", "")))
}

func TestResolver_WithoutDateTokenIgnoresClock(t *testing.T) {
	template := "{namespace}.{class-interface} {author}"
	meta := DocumentMetadata{Namespace: "Foo", Class: "Bar"}
	user := NewUserIdentity("Jane", "")

	early := NewResolver(WithClock(func() time.Time { return time.Unix(0, 0) }))
	late := NewResolver(WithClock(func() time.Time { return fixedNow }))

	assert.Equal(t, early.Unmarked(template, meta, user), late.Unmarked(template, meta, user))
	assert.Equal(t, "Foo.Bar Jane", late.Unmarked(template, meta, user))
}

func TestResolver_DefaultFormatIsStable(t *testing.T) {
	r := fixedResolver()
	first := r.Resolve("{date}", DocumentMetadata{}, UserIdentity{})
	second := r.Resolve("{date}", DocumentMetadata{}, UserIdentity{})
	assert.Equal(t, first, second)
}

func TestResolver_Resolve(t *testing.T) {
	r := fixedResolver()
	got := r.Resolve("// {namespace}\n// {author}", DocumentMetadata{Namespace: "N"}, NewUserIdentity("A", ""))
	assert.Equal(t, "//--$$%%// N\n//--$$%%// A", got)
}

func TestRendered_Lines(t *testing.T) {
	r := fixedResolver()
	rendered := r.Render("a\nb\nc\n", DocumentMetadata{}, UserIdentity{})

	assert.Equal(t, 4, rendered.Lines())
	assert.Len(t, strings.Split(rendered.Marked, "\n"), 4)
}

func TestFindDateToken(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		wantToken  string
		wantFormat string
		wantOK     bool
	}{
		{name: "absent", template: "no date here", wantOK: false},
		{name: "bare", template: "x {date} y", wantToken: "{date}", wantOK: true},
		{name: "with_format", template: "{date:yyyy-MM-dd}", wantToken: "{date:yyyy-MM-dd}", wantFormat: "yyyy-MM-dd", wantOK: true},
		{name: "one_character_format_ignored", template: "{date:d}", wantToken: "{date:d}", wantOK: true},
		{name: "two_character_format", template: "{date:yy}", wantToken: "{date:yy}", wantFormat: "yy", wantOK: true},
		{name: "first_brace_ends_token", template: "{date:'{'yyyy'}'}", wantToken: "{date:'{'yyyy'}", wantFormat: "'{'yyyy'", wantOK: true},
		{name: "unclosed", template: "{date:yyyy", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, format, ok := FindDateToken(tt.template)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
			assert.Equal(t, tt.wantFormat, format)
		})
	}
}
