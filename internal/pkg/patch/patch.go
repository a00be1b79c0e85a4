// Package patch provides an explicit optional-field representation for partial
// updates. A Field distinguishes three states that a plain pointer cannot:
// "leave the field untouched", "set the field to a value", and "clear the
// field". Update commands carry Fields so the distinction survives the trip
// from the request boundary to the domain layer.
package patch

// Field represents an update to a single optional field.
//
// The zero value means the field was omitted and must be left untouched.
// Set produces a Field that assigns a new value; Clear produces a Field that
// removes the value (the "explicit null" case).
type Field[T any] struct {
	value   *T
	defined bool
}

// Set returns a Field that assigns v to the target field.
func Set[T any](v T) Field[T] {
	return Field[T]{value: &v, defined: true}
}

// Clear returns a Field that removes the target field's value.
func Clear[T any]() Field[T] {
	return Field[T]{defined: true}
}

// Defined reports whether the field was supplied at all.
// An undefined Field must leave the target untouched.
func (f Field[T]) Defined() bool {
	return f.defined
}

// Value returns the value to assign, or nil when the field must be cleared.
// Only meaningful when Defined reports true.
func (f Field[T]) Value() *T {
	return f.value
}
