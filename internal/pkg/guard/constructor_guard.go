// Package guard implements the constructor-guard pattern for value types.
//
// A ConstructorGuard embedded in a struct distinguishes instances created
// through a constructor from zero values. Validate returns an error for any
// instance that bypassed the constructor, which lets domain objects enforce
// their invariants without resorting to pointer-only APIs.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied and the guarded object was not created via its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as properly constructed. The zero value is
// invalid; obtain a valid guard only through NewConstructorGuard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the holder was created through its constructor.
// Otherwise it returns notConstructed, or ErrDefaultConstructorGuard when
// notConstructed is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
