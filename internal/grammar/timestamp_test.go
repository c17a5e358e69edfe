package grammar

import (
	"testing"
	"time"
)

func TestParseTimestamp_Weak(t *testing.T) {
	want := time.Unix(1526063310, 0).UTC()

	tests := []string{
		"2018-05-11T18:28:30Z",
		"2018-05-11 18:28:30Z",
		"2018-05-11 18:28:30",
		"2018-05-11t18:28:30Z",
		"2018-05-11T18:28:30",
		"2018-05-11T20:28:30+02:00",
		"2018-05-11 20:28:30+02:00",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			got, err := ParseTimestamp(in)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error: %v", in, err)
			}
			if !got.Equal(want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", in, got, want)
			}
		})
	}
}

func TestParseTimestamp_Fractional(t *testing.T) {
	got, err := ParseTimestamp("2018-05-11 18:28:30.000000001")
	if err != nil {
		t.Fatalf("ParseTimestamp error: %v", err)
	}
	want := time.Unix(1526063310, 1).UTC()
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	tests := []string{
		"",
		"not a timestamp",
		"2018-05-11",
		"18:28:30 2018-05-11",
		"2018-13-11T18:28:30Z",
		"2018-05-32T18:28:30Z",
		"2018-05-11T25:28:30Z",
		"2018-05-11T18:28:30ZZ",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseTimestamp(in); err == nil {
				t.Errorf("ParseTimestamp(%q) succeeded, want error", in)
			}
		})
	}
}

func TestParseTimestampStrict(t *testing.T) {
	if _, err := ParseTimestampStrict("2018-05-11T18:28:30Z"); err != nil {
		t.Fatalf("strict parse of valid RFC3339 failed: %v", err)
	}

	// Weak forms are rejected in strict mode.
	for _, in := range []string{"2018-05-11 18:28:30Z", "2018-05-11T18:28:30"} {
		if _, err := ParseTimestampStrict(in); err == nil {
			t.Errorf("ParseTimestampStrict(%q) succeeded, want error", in)
		}
	}
}

// Weak acceptance is value-equivalent to strict: the relaxed spellings
// decode to the same instant as their canonical counterpart.
func TestWeakEqualsStrict(t *testing.T) {
	strict, err := ParseTimestampStrict("2018-05-11T18:28:30Z")
	if err != nil {
		t.Fatal(err)
	}
	weak, err := ParseTimestamp("2018-05-11 18:28:30")
	if err != nil {
		t.Fatal(err)
	}
	if !weak.Equal(strict) {
		t.Errorf("weak %v != strict %v", weak, strict)
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Unix(1526063310, 0).UTC(), "2018-05-11T18:28:30Z"},
		{time.Unix(1526063310, 0).In(time.FixedZone("CEST", 2*3600)), "2018-05-11T18:28:30Z"},
		{time.Unix(1526063310, 500000000).UTC(), "2018-05-11T18:28:30.5Z"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatTimestamp(tt.in); got != tt.want {
				t.Errorf("FormatTimestamp = %q, want %q", got, tt.want)
			}
		})
	}
}
