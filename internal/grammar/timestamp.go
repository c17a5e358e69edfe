package grammar

import (
	"fmt"
	"time"
)

// noOffset is RFC3339 without the zone suffix; a missing offset means UTC.
const noOffset = "2006-01-02T15:04:05.999999999"

// ParseTimestampStrict parses a strict RFC3339 timestamp: 'T' separator,
// explicit offset, optional fractional seconds.
func ParseTimestampStrict(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t.UTC(), nil
}

// ParseTimestamp parses a timestamp in weak RFC3339 mode: the date-time
// separator may be a space or a lowercase 't', and the offset suffix may be
// omitted entirely, in which case UTC is assumed. Field order and numeric
// validity are still enforced.
func ParseTimestamp(s string) (time.Time, error) {
	norm := s
	if len(norm) > 10 && (norm[10] == ' ' || norm[10] == 't') {
		norm = norm[:10] + "T" + norm[11:]
	}
	if t, err := time.Parse(time.RFC3339Nano, norm); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(noOffset, norm); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
}

// FormatTimestamp renders a timestamp in canonical form: strict RFC3339 in
// UTC with a trailing 'Z'. Fractional seconds are kept when present and
// trailing zeros are trimmed.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
