// Package patch holds helpers for partial updates where a nil pointer means
// "field not submitted" and any non-nil value, including the zero value, is
// applied.
package patch

// Coalesce returns *ptr when the field was submitted, otherwise current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// CoalesceWith is Coalesce for fields that need parsing. parse receives the
// submitted raw value and the current value, so it can keep current when the
// input does not parse.
func CoalesceWith[R, T any](ptr *R, current T, parse func(raw R, current T) T) T {
	if ptr == nil {
		return current
	}
	return parse(*ptr, current)
}
