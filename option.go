package humanwire

// Option holds a native value that may be absent. The zero value is None,
// so an untouched struct field behaves as an absent one without any codec
// involvement.
//
// On the wire, None is always an explicit null scalar, never an omitted
// field; omission is a host decision (pointer fields, omitempty), not the
// codec's.
type Option[T Scalar] struct {
	value   T
	present bool
}

// Some returns an Option holding v.
func Some[T Scalar](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns an absent Option.
func None[T Scalar]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsNone returns true if no value is present.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Or returns the held value, or fallback when absent.
func (o Option[T]) Or(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
