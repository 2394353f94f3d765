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

// Package datefmt formats times with the day-month-year pattern letters used by
// header templates (yyyy-MM-dd, HH:mm:ss, dddd, tt, ...), with the invariant
// culture names. Single-letter patterns select a standard pattern.
package datefmt

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// 📅 General is the pattern used when a template gives no format.
const General = "MM/dd/yyyy HH:mm:ss"

type standardPattern struct {
	pattern string
	utc     bool
}

// 🗺️ standard maps single-letter patterns to their expansion
var standard = map[byte]standardPattern{
	'd': {pattern: "MM/dd/yyyy"},
	'D': {pattern: "dddd, dd MMMM yyyy"},
	'f': {pattern: "dddd, dd MMMM yyyy HH:mm"},
	'F': {pattern: "dddd, dd MMMM yyyy HH:mm:ss"},
	'g': {pattern: "MM/dd/yyyy HH:mm"},
	'G': {pattern: General},
	'm': {pattern: "MMMM dd"},
	'M': {pattern: "MMMM dd"},
	'o': {pattern: "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"},
	'O': {pattern: "yyyy'-'MM'-'dd'T'HH':'mm':'ss'.'fffffffK"},
	'r': {pattern: "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'", utc: true},
	'R': {pattern: "ddd, dd MMM yyyy HH':'mm':'ss 'GMT'", utc: true},
	's': {pattern: "yyyy'-'MM'-'dd'T'HH':'mm':'ss"},
	't': {pattern: "HH:mm"},
	'T': {pattern: "HH:mm:ss"},
	'u': {pattern: "yyyy'-'MM'-'dd HH':'mm':'ss'Z'", utc: true},
	'U': {pattern: "dddd, dd MMMM yyyy HH:mm:ss", utc: true},
	'y': {pattern: "yyyy MMMM"},
	'Y': {pattern: "yyyy MMMM"},
}

// Format renders t according to pattern. An empty pattern uses General.
// Letters that are not pattern letters are copied through, as is text in
// single or double quotes and any character following a backslash.
func Format(t time.Time, pattern string) string {
	if pattern == "" {
		pattern = General
	}

	if len(pattern) == 1 {
		if std, ok := standard[pattern[0]]; ok {
			pattern = std.pattern
			if std.utc {
				t = t.UTC()
			}
		}
	}

	var b strings.Builder
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch c {
		case '\'', '"':
			end := strings.IndexByte(pattern[i+1:], c)
			if end < 0 {
				b.WriteString(pattern[i+1:])
				i = len(pattern)
				continue
			}
			b.WriteString(pattern[i+1 : i+1+end])
			i += end + 2
			continue
		case '\\':
			if i+1 >= len(pattern) {
				b.WriteByte(c)
				i++
				continue
			}
			_, size := utf8.DecodeRuneInString(pattern[i+1:])
			b.WriteString(pattern[i+1 : i+1+size])
			i += 1 + size
			continue
		case '%':
			// %d forces a one-letter custom pattern; the letter follows
			i++
			continue
		}

		n := runLength(pattern, i)
		if component, ok := render(t, c, n); ok {
			b.WriteString(component)
		} else {
			b.WriteString(pattern[i : i+n])
		}
		i += n
	}

	return b.String()
}

func runLength(pattern string, i int) int {
	n := 1
	for i+n < len(pattern) && pattern[i+n] == pattern[i] {
		n++
	}
	return n
}

// render formats a run of n identical pattern letters. ok is false when c is
// not a pattern letter.
func render(t time.Time, c byte, n int) (string, bool) {
	switch c {
	case 'd':
		switch n {
		case 1:
			return strconv.Itoa(t.Day()), true
		case 2:
			return pad2(t.Day()), true
		case 3:
			return t.Format("Mon"), true
		default:
			return t.Weekday().String(), true
		}
	case 'M':
		switch n {
		case 1:
			return strconv.Itoa(int(t.Month())), true
		case 2:
			return pad2(int(t.Month())), true
		case 3:
			return t.Format("Jan"), true
		default:
			return t.Month().String(), true
		}
	case 'y':
		year := t.Year()
		switch n {
		case 1:
			return strconv.Itoa(year % 100), true
		case 2:
			return pad2(year % 100), true
		default:
			return fmt.Sprintf("%0*d", n, year), true
		}
	case 'h':
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		if n == 1 {
			return strconv.Itoa(hour), true
		}
		return pad2(hour), true
	case 'H':
		if n == 1 {
			return strconv.Itoa(t.Hour()), true
		}
		return pad2(t.Hour()), true
	case 'm':
		if n == 1 {
			return strconv.Itoa(t.Minute()), true
		}
		return pad2(t.Minute()), true
	case 's':
		if n == 1 {
			return strconv.Itoa(t.Second()), true
		}
		return pad2(t.Second()), true
	case 'f', 'F':
		digits := fraction(t, n)
		if c == 'F' {
			digits = strings.TrimRight(digits, "0")
		}
		return digits, true
	case 't':
		designator := "AM"
		if t.Hour() >= 12 {
			designator = "PM"
		}
		if n == 1 {
			return designator[:1], true
		}
		return designator, true
	case 'g':
		return "A.D.", true
	case 'z':
		return offset(t, n), true
	case 'K':
		if t.Location() == time.UTC {
			return "Z", true
		}
		return t.Format("-07:00"), true
	}
	return "", false
}

func pad2(v int) string {
	return fmt.Sprintf("%02d", v)
}

// fraction returns the first n digits of the second fraction, truncated.
func fraction(t time.Time, n int) string {
	if n > 9 {
		n = 9
	}
	nanos := fmt.Sprintf("%09d", t.Nanosecond())
	return nanos[:n]
}

func offset(t time.Time, n int) string {
	_, secs := t.Zone()
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	hours, minutes := secs/3600, (secs%3600)/60
	switch n {
	case 1:
		return sign + strconv.Itoa(hours)
	case 2:
		return sign + pad2(hours)
	default:
		return sign + pad2(hours) + ":" + pad2(minutes)
	}
}
