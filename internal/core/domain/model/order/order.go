package order

import (
	"errors"
	"fmt"
	"io"

	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/delivery"
	"deliveryapp/internal/core/domain/model/kernel"
	"deliveryapp/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a purchase record: what was bought, by whom, and how it reaches them.
//
// Order follows these invariants:
//   - Number is positive
//   - Delivery and customer are set and were built by their constructors
//   - The surrogate id is generated once and never changes
//
// The customer is shared with other orders; the delivery belongs to this order alone.
type Order struct {
	// id is the surrogate identifier, independent of the customer-facing number
	id kernel.UUID

	// number is what the customer sees (must be positive)
	number int

	// delivery describes how the order reaches the customer
	delivery delivery.Delivery

	// description is free text about the purchase
	description string

	// customer is shared, not owned
	customer *customer.Customer

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order with validation and a freshly generated surrogate id.
// Unlike deliveries and customers, an order is never returned half-built: an
// order without a valid number, delivery or customer cannot be displayed.
//
// Parameters:
//   - number: customer-facing order number (must be positive)
//   - d: delivery variant owned by the order (must be non-nil and constructed)
//   - description: free text, may be empty
//   - c: customer the order belongs to (must be non-nil and constructed); shared, not copied
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: all validation failures joined with errors.Join
//
// Example:
//
//	home, _ := delivery.NewHomeDelivery("ул. Ленина 1а", "Иван Пушкин")
//	alice, _ := customer.NewCustomer("Alice", "alice@nomail.com")
//	o, err := order.NewOrder(1, home, "iPhone 15", alice)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	number int,
	d delivery.Delivery,
	description string,
	c *customer.Customer,
) (*Order, error) {
	o := &Order{
		id:            kernel.NewUUID(),
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setDelivery(d),
		o.SetCustomer(c),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order is nil or was not created via NewOrder
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the surrogate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the customer-facing order number.
func (o *Order) Number() int {
	return o.number
}

// Delivery returns the delivery variant of the order.
func (o *Order) Delivery() delivery.Delivery {
	return o.delivery
}

// Description returns the order description.
func (o *Order) Description() string {
	return o.description
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// SetCustomer re-points the order at another customer.
//
// Returns:
//   - ValueIsRequiredError if c is nil
//   - ErrCustomerIsNotConstructed if c was not created via customer.NewCustomer
//
// On failure the current customer is kept.
func (o *Order) SetCustomer(c *customer.Customer) error {
	if c == nil {
		return errs.NewValueIsRequiredError("customer")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	o.customer = c
	return nil
}

// UpdateNumber replaces the order number if it is positive.
//
// Parameters:
//   - number: the new number (must be greater than 0)
//
// Returns:
//   - nil on success
//   - ValueIsInvalidError if number <= 0; the current number is left unchanged
//
// Example:
//
//	if err := o.UpdateNumber(3); err != nil {
//	    // number is still the old one
//	}
func (o *Order) UpdateNumber(number int) error {
	return o.setNumber(number)
}

// DisplayDetails writes the number, description and customer of the order,
// followed by the delivery line.
//
// Output:
//
//	Order number: 1
//	Description: iPhone 15
//	Customer: Alice, Email: alice@nomail.com
//	order at address ул. Ленина 1а will be delivered by courier Иван Пушкин
func (o *Order) DisplayDetails(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Order number: %d\nDescription: %s\nCustomer: %s, Email: %s\n",
		o.number, o.description, o.customer.Name(), o.customer.Email()); err != nil {
		return err
	}

	return delivery.Deliver(w, o.delivery)
}

func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("number", fmt.Errorf("%d is not greater than 0", number))
	}
	o.number = number
	return nil
}

func (o *Order) setDelivery(d delivery.Delivery) error {
	if d == nil {
		return errs.NewValueIsRequiredError("delivery")
	}
	if err := d.Validate(); err != nil {
		return err
	}
	o.delivery = d
	return nil
}
