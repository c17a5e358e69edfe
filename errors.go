package humanwire

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidValue indicates an input scalar could not be decoded.
	ErrInvalidValue = errors.New("invalid value")

	// ErrNotString indicates the input scalar was not a string (a number,
	// boolean, object, or array where text was required). It matches
	// ErrInvalidValue under errors.Is.
	ErrNotString = fmt.Errorf("%w: not a string scalar", ErrInvalidValue)
)

// ValueError represents a decode failure.
// It wraps a sentinel error with the expectation that was violated and the
// raw offending input, so callers can attach field-path context.
type ValueError struct {
	Err      error  // Underlying sentinel error (ErrInvalidValue, ErrNotString)
	Expected string // Human-readable expectation ("a duration", "a timestamp")
	Value    string // Raw offending input as it appeared on the wire
	Cause    error  // Original error from the grammar, if any
}

func (e *ValueError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("expected %s, got %q: %v", e.Expected, e.Value, e.Cause)
	}
	return fmt.Sprintf("expected %s, got %q", e.Expected, e.Value)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// newValueError creates a ValueError for a string the grammar rejected.
func newValueError(expected, value string, cause error) error {
	return &ValueError{
		Err:      ErrInvalidValue,
		Expected: expected,
		Value:    value,
		Cause:    cause,
	}
}

// newTypeError creates a ValueError for a scalar that was not a string.
func newTypeError(expected, value string) error {
	return &ValueError{
		Err:      ErrNotString,
		Expected: expected,
		Value:    value,
	}
}
