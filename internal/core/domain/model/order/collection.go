package order

import "deliveryapp/internal/pkg/errs"

// Collection is an ordered list of orders. Orders can be appended and replaced
// by position but never removed.
type Collection struct {
	orders []*Order
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends o. A nil or unconstructed order is rejected.
func (c *Collection) Add(o *Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	c.orders = append(c.orders, o)
	return nil
}

// Get returns the order at index i.
func (c *Collection) Get(i int) (*Order, error) {
	if err := c.checkIndex(i); err != nil {
		return nil, err
	}
	return c.orders[i], nil
}

// Set replaces the order at index i.
func (c *Collection) Set(i int, o *Order) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}
	c.orders[i] = o
	return nil
}

// Count returns the number of orders in the collection.
func (c *Collection) Count() int {
	return len(c.orders)
}

func (c *Collection) checkIndex(i int) error {
	if i < 0 || i >= len(c.orders) {
		return errs.NewValueIsOutOfRangeError("index", i, 0, len(c.orders)-1)
	}
	return nil
}
