// Package guard provides the constructor-guard pattern used by value objects,
// commands and queries across the application. Embedding a ConstructorGuard in
// a struct makes zero-value instances detectable, so every object can enforce
// creation through its designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// was supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag can only be set through NewConstructorGuard, which domain
// constructors call as their last step.
//
// Example:
//
//	type Reason struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewReason(text string) (Reason, error) {
//	    if text == "" {
//	        return Reason{}, errors.New("text is required")
//	    }
//	    return Reason{text: text, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r Reason) Validate() error {
//	    return r.guard.Validate(ErrReasonIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when nil was passed.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
