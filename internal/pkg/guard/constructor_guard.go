package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embedding it in a
// domain type lets Validate tell a constructed value from a zero value.
//
// Example usage:
//
//	var ErrShopIsNotConstructed = errors.New("Shop must be created via NewShop")
//
//	type Shop struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewShop(name string) *Shop {
//	    return &Shop{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s *Shop) Validate() error {
//	    return s.guard.Validate(ErrShopIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
