package customer

import (
	"errors"
	"fmt"
	"strings"

	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via NewCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds a name and an email. Equality and hashing are derived from
// the email only: two customers with the same email are the same customer.
//
// Example:
//
//	alice, err := customer.NewCustomer("Alice", "alice@nomail.com")
//	if err != nil {
//	    return err
//	}
//	twin, _ := customer.NewCustomer("Alice B.", "alice@nomail.com")
//	alice.Equal(twin) // true
type Customer struct {
	name  string
	email string

	guard guard.ConstructorGuard
}

// NewCustomer creates a customer.
//
// Parameters:
//   - name: display name, any value
//   - email: must contain "@"
//
// Returns:
//   - *Customer: always non-nil; the email stays empty if it was rejected
//   - error: ValueIsInvalidError if the email does not contain "@"
func NewCustomer(name string, email string) (*Customer, error) {
	c := &Customer{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}

	return c, c.SetEmail(email)
}

// Validate ensures the Customer was created through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the last accepted email.
func (c *Customer) Email() string {
	return c.email
}

// SetName replaces the display name. Any value is accepted.
func (c *Customer) SetName(name string) {
	c.name = name
}

// SetEmail replaces the email if it contains "@". On failure the previous
// email is kept and a ValueIsInvalidError is returned.
func (c *Customer) SetEmail(email string) error {
	if !IsValidEmail(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q does not contain @", email))
	}
	c.email = email
	return nil
}

// Equal reports whether both customers have the same email.
// A nil customer is equal only to another nil customer.
func (c *Customer) Equal(other *Customer) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.email == other.email
}

// Key returns a hash key consistent with Equal, suitable for map lookups.
func (c *Customer) Key() string {
	return c.email
}

// String implements fmt.Stringer.
func (c *Customer) String() string {
	return fmt.Sprintf("%s <%s>", c.name, c.email)
}

// IsValidEmail is the only check applied to emails: the value must contain "@".
func IsValidEmail(email string) bool {
	return strings.Contains(email, "@")
}
