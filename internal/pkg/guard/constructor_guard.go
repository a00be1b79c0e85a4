// Package guard provides a defensive construction pattern for value objects,
// entities, commands, and queries. Embedding a ConstructorGuard in a struct
// makes zero-value instances detectable, so objects that bypassed their
// constructor fail validation instead of silently carrying invalid state.
package guard

import "errors"

// ErrNotConstructed is the default error returned by ConstructorGuard.Validate
// when no specific error is provided. This ensures validation always fails
// with a meaningful message.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether its embedding struct was created through the
// designated constructor. The zero value is "not constructed" and fails
// validation; only NewConstructorGuard produces a passing guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
// Call this only from the holder's constructor function.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was properly constructed.
// Otherwise it returns err, or ErrNotConstructed when err is nil.
func (g ConstructorGuard) Validate(err error) error {
	if g.isConstructed {
		return nil
	}
	if err == nil {
		return ErrNotConstructed
	}
	return err
}
