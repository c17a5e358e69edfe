package humanwire

import "time"

// Kind identifies a supported native value kind. The set is closed: only
// durations and timestamps carry a human-readable wire form, and third-party
// types cannot opt in.
type Kind string

const (
	// KindDuration is an elapsed-time quantity (time.Duration).
	KindDuration Kind = "duration"

	// KindTimestamp is a point in time (time.Time).
	KindTimestamp Kind = "timestamp"
)

// validKinds contains all supported kinds for validation.
var validKinds = map[Kind]bool{
	KindDuration:  true,
	KindTimestamp: true,
}

// IsValidKind returns true if k is a supported value kind.
func IsValidKind(k Kind) bool {
	return validKinds[k]
}

// Kinds returns the supported value kinds.
func Kinds() []Kind {
	return []Kind{KindDuration, KindTimestamp}
}

// Scalar constrains the native types that have a textual wire form.
type Scalar interface {
	time.Duration | time.Time
}

// Payload constrains the types a Decoded wrapper may hold: a native scalar
// or an optional thereof.
type Payload interface {
	time.Duration | time.Time | Option[time.Duration] | Option[time.Time]
}

// KindOf reports the kind underlying a payload type.
func KindOf[T Payload]() Kind {
	var zero T
	switch any(zero).(type) {
	case time.Time, Option[time.Time]:
		return KindTimestamp
	default:
		return KindDuration
	}
}
