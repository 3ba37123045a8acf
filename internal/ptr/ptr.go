// Package ptr provides pointer helper functions for the optional fields of
// recurrence configurations.
package ptr

// To returns a pointer to the given value.
func To[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of the value ptr points to, or nil if
// ptr is nil.
func Clone[T any](ptr *T) *T {
	if ptr == nil {
		return nil
	}
	v := *ptr
	return &v
}
