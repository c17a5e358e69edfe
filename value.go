package humanwire

import (
	"time"

	"github.com/humanwire/humanwire/internal/grammar"
)

// Expectation strings carried by decode errors.
const (
	expectDuration  = "a duration"
	expectTimestamp = "a timestamp"
)

// scalarCodec pairs the parse and format halves for one native kind.
// Exactly two instances exist; every integration path (wrapper types,
// Decoded, and the free functions) dispatches to them, so the textual
// behavior cannot drift between paths.
type scalarCodec[T Scalar] struct {
	expect string
	parse  func(string) (T, error)
	format func(T) string
}

var durationCodec = scalarCodec[time.Duration]{
	expect: expectDuration,
	parse:  grammar.ParseDuration,
	format: grammar.FormatDuration,
}

var timestampCodec = scalarCodec[time.Time]{
	expect: expectTimestamp,
	parse:  grammar.ParseTimestamp,
	format: grammar.FormatTimestamp,
}

// scalarFor selects the codec instance for T. Total over the closed Scalar
// set.
func scalarFor[T Scalar]() scalarCodec[T] {
	var zero T
	switch any(zero).(type) {
	case time.Time:
		return any(timestampCodec).(scalarCodec[T])
	default:
		return any(durationCodec).(scalarCodec[T])
	}
}

// decode parses text, translating grammar failures into ValueErrors.
func (c scalarCodec[T]) decode(text string) (T, error) {
	v, err := c.parse(text)
	if err != nil {
		var zero T
		return zero, newValueError(c.expect, text, err)
	}
	return v, nil
}

// decodeScalar decodes a possibly-null scalar into a plain native value.
// A null scalar (nil raw) is not acceptable for a non-optional value.
func decodeScalar[T Scalar](raw *string) (T, error) {
	c := scalarFor[T]()
	if raw == nil {
		var zero T
		return zero, newTypeError(c.expect, "null")
	}
	return c.decode(*raw)
}

// decodeNullable lifts the scalar codec for T to Option[T]: a null scalar
// decodes to None, anything else goes through the underlying codec.
func decodeNullable[T Scalar](raw *string) (Option[T], error) {
	if raw == nil {
		return Option[T]{}, nil
	}
	v, err := scalarFor[T]().decode(*raw)
	if err != nil {
		return Option[T]{}, err
	}
	return Some(v), nil
}

// encodeNullable mirrors decodeNullable: None encodes to the null scalar
// (nil), Some to the underlying canonical form.
func encodeNullable[T Scalar](o Option[T]) *string {
	v, ok := o.Get()
	if !ok {
		return nil
	}
	s := scalarFor[T]().format(v)
	return &s
}

// decodePayload decodes a possibly-null scalar into any supported payload
// type, routing optionals through the nullable adapter.
func decodePayload[T Payload](raw *string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case time.Duration:
		v, err := decodeScalar[time.Duration](raw)
		return any(v).(T), err
	case time.Time:
		v, err := decodeScalar[time.Time](raw)
		return any(v).(T), err
	case Option[time.Duration]:
		v, err := decodeNullable[time.Duration](raw)
		return any(v).(T), err
	default:
		v, err := decodeNullable[time.Time](raw)
		return any(v).(T), err
	}
}

// expectFor reports the expectation string for a payload type.
func expectFor[T Payload]() string {
	if KindOf[T]() == KindTimestamp {
		return expectTimestamp
	}
	return expectDuration
}
