package order

import (
	"fmt"
	"io"
)

// ChangeDescription replaces the description of o unconditionally and writes
// a confirmation line to w.
//
// Returns:
//   - ErrOrderIsNotConstructed if o is nil or was not created via NewOrder
//   - the write error, if any; the description is replaced regardless
func ChangeDescription(w io.Writer, o *Order, description string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	o.description = description
	_, err := fmt.Fprintf(w, "Order changed: %s\n", description)
	return err
}

// IsSameOrder reports whether a and b carry the same number. Nothing else is
// compared: orders with equal numbers but different content are the same order.
func IsSameOrder(a, b *Order) bool {
	if a == nil || b == nil {
		return false
	}
	return a.number == b.number
}
