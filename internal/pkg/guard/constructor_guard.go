// Package guard implements the constructor guard pattern used by domain
// objects, commands, and queries. Embedding a ConstructorGuard lets a type
// distinguish instances created through its constructor from zero values,
// so invariants established at construction time cannot be bypassed.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// created through its constructor and no specific error was provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, which is the whole point: a struct literal that bypassed
// the constructor carries a zero guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was properly constructed, otherwise
// the provided error (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
