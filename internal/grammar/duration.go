// Package grammar implements the textual grammar for durations and
// timestamps: free-form unit-suffixed duration strings and RFC3339
// timestamps with a lenient acceptance mode. Parsing is liberal, formatting
// always produces the single canonical form.
package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Calendar units follow the Julian year convention: a year is 365.25 days,
// a month is one twelfth of that.
const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 2630016 * time.Second // 30.44 days
	year  = 31557600 * time.Second // 365.25 days
)

// units maps every accepted unit spelling to its length.
var units = map[string]time.Duration{
	"ns":           time.Nanosecond,
	"nsec":         time.Nanosecond,
	"nanosecond":   time.Nanosecond,
	"nanoseconds":  time.Nanosecond,
	"us":           time.Microsecond,
	"µs":      time.Microsecond, // µs
	"usec":         time.Microsecond,
	"microsecond":  time.Microsecond,
	"microseconds": time.Microsecond,
	"ms":           time.Millisecond,
	"msec":         time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"sec":          time.Second,
	"secs":         time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"min":          time.Minute,
	"mins":         time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hr":           time.Hour,
	"hrs":          time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            day,
	"day":          day,
	"days":         day,
	"w":            week,
	"week":         week,
	"weeks":        week,
	"month":        month,
	"months":       month,
	"y":            year,
	"year":         year,
	"years":        year,
}

// ErrNegative reports a duration string with a leading sign.
var ErrNegative = errors.New("negative durations are not supported")

// ParseDuration parses a free-form duration string. A duration is one or
// more integer-and-unit terms, with optional whitespace between terms and
// between an integer and its unit: "15s", "15 seconds", "2h30m",
// "1 day 6 hours". The bare string "0" is accepted as the zero duration.
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration string")
	}
	if s == "0" {
		return 0, nil
	}
	if s[0] == '-' || s[0] == '+' {
		return 0, ErrNegative
	}

	var total time.Duration
	terms := 0
	for len(s) > 0 {
		// Integer part.
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == 0 {
			return 0, fmt.Errorf("invalid duration %q: expected a number at %q", orig, s)
		}
		n, err := strconv.ParseInt(s[:i], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q: %w", orig, err)
		}
		s = strings.TrimLeft(s[i:], " \t")

		// Unit part.
		j := 0
		for j < len(s) && !isDigit(s[j]) && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		if j == 0 {
			return 0, fmt.Errorf("invalid duration %q: missing unit after %d", orig, n)
		}
		unit, ok := units[strings.ToLower(s[:j])]
		if !ok {
			return 0, fmt.Errorf("invalid duration %q: unknown unit %q", orig, s[:j])
		}
		s = strings.TrimLeft(s[j:], " \t")

		term := time.Duration(n) * unit
		if n != 0 && (term/unit != time.Duration(n) || total+term < total) {
			return 0, fmt.Errorf("invalid duration %q: value out of range", orig)
		}
		total += term
		terms++
	}
	if terms == 0 {
		return 0, fmt.Errorf("invalid duration %q", orig)
	}
	return total, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// formatUnits is the canonical decomposition, largest first. Weeks and
// calendar units are accepted on input but never produced.
var formatUnits = []struct {
	suffix string
	d      time.Duration
}{
	{"d", day},
	{"h", time.Hour},
	{"m", time.Minute},
	{"s", time.Second},
	{"ms", time.Millisecond},
	{"us", time.Microsecond},
	{"ns", time.Nanosecond},
}

// FormatDuration renders a duration in canonical form: the shortest
// decomposition into whole units, largest unit first, terms joined by a
// single space. The zero duration is "0s".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	first := true
	for _, u := range formatUnits {
		n := d / u.d
		if n == 0 {
			continue
		}
		d -= n * u.d
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(int64(n), 10))
		b.WriteString(u.suffix)
		first = false
	}
	return b.String()
}
