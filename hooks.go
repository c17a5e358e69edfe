package humanwire

// Free-function entry points for hosts that implement their own marshal
// methods instead of declaring wrapper-typed fields. Both levels share the
// scalar codecs in value.go with the wrapper types, so the two integration
// paths cannot diverge.

// Parse decodes a textual scalar into a native value: free-form duration
// grammar for time.Duration, weak RFC3339 for time.Time. Failures are
// ValueErrors matching ErrInvalidValue.
func Parse[T Scalar](text string) (T, error) {
	return scalarFor[T]().decode(text)
}

// Format encodes a native value in its canonical wire form. Formatting is
// total: it never fails for any in-range value.
func Format[T Scalar](v T) string {
	return scalarFor[T]().format(v)
}

// ParseNullable decodes a nullable textual scalar. A nil raw pointer is the
// null scalar (or an absent field, when the host's policy maps absence to
// null) and decodes to None; anything else decodes through the same logic
// as Parse and yields Some.
func ParseNullable[T Scalar](raw *string) (Option[T], error) {
	return decodeNullable[T](raw)
}

// FormatNullable encodes an optional value. None yields nil, meaning an
// explicit null scalar; whether to omit the field instead is the host's
// decision.
func FormatNullable[T Scalar](o Option[T]) *string {
	return encodeNullable(o)
}
