// Package guard detects domain objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, entities, commands and queries.
// Only NewConstructorGuard produces a guard that validates, so a zero-value
// struct literal is always rejected.
//
// Example:
//
//	type ConfirmEnquiryCommand struct {
//	    enquiryID kernel.UUID
//	    guard     guard.ConstructorGuard
//	}
//
//	func (c ConfirmEnquiryCommand) Validate() error {
//	    return c.guard.Validate(ErrConfirmEnquiryCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the owning object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
