package datefmt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	utc := time.Date(2026, time.October, 16, 14, 5, 9, 123400000, time.UTC)
	cest := time.Date(2026, time.October, 16, 9, 5, 9, 0, time.FixedZone("CEST", 2*60*60))

	tests := []struct {
		name    string
		at      time.Time
		pattern string
		want    string
	}{
		{name: "year", at: utc, pattern: "yyyy", want: "2026"},
		{name: "empty_uses_general", at: utc, pattern: "", want: "10/16/2026 14:05:09"},
		{name: "dotted_date", at: utc, pattern: "dd.MM.yyyy", want: "16.10.2026"},
		{name: "short_year_unpadded", at: utc, pattern: "yy-M-d", want: "26-10-16"},
		{name: "five_digit_year", at: utc, pattern: "yyyyy", want: "02026"},
		{name: "names", at: utc, pattern: "ddd MMM / dddd MMMM", want: "Fri Oct / Friday October"},
		{name: "twelve_hour_clock", at: utc, pattern: "hh:mm tt", want: "02:05 PM"},
		{name: "single_letter_designators", at: cest, pattern: "h:m:s t", want: "9:5:9 A"},
		{name: "fraction_truncated", at: utc, pattern: "ss.fff", want: "09.123"},
		{name: "fraction_trailing_zeros_trimmed", at: utc, pattern: "FFFFF", want: "1234"},
		{name: "quoted_literal", at: utc, pattern: "'Year' yyyy", want: "Year 2026"},
		{name: "double_quoted_literal", at: utc, pattern: `"on" dd`, want: "on 16"},
		{name: "escaped_letter", at: utc, pattern: `\y yyyy`, want: "y 2026"},
		{name: "percent_forces_custom", at: utc, pattern: "%d", want: "16"},
		{name: "unknown_letters_copied", at: utc, pattern: "Q yyyy", want: "Q 2026"},
		{name: "offset_forms", at: cest, pattern: "z|zz|zzz|K", want: "+2|+02|+02:00|+02:00"},
		{name: "utc_kind", at: utc, pattern: "K", want: "Z"},
		{name: "standard_short_date", at: utc, pattern: "d", want: "10/16/2026"},
		{name: "standard_long_date", at: utc, pattern: "D", want: "Friday, 16 October 2026"},
		{name: "standard_sortable", at: utc, pattern: "s", want: "2026-10-16T14:05:09"},
		{name: "standard_round_trip", at: utc, pattern: "o", want: "2026-10-16T14:05:09.1234000Z"},
		{name: "standard_universal_converts_to_utc", at: cest, pattern: "u", want: "2026-10-16 07:05:09Z"},
		{name: "standard_short_time", at: utc, pattern: "t", want: "14:05"},
		{name: "standard_year_month", at: utc, pattern: "Y", want: "2026 October"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.at, tt.pattern))
		})
	}
}

func TestFormatIsStable(t *testing.T) {
	at := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, Format(at, ""), Format(at, ""))
}
