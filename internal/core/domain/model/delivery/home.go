package delivery

import "fmt"

// HomeDelivery is delivered by a courier to the customer's address.
type HomeDelivery struct {
	base

	courierName string
}

// NewHomeDelivery creates a home delivery brought by courierName to address.
//
// Parameters:
//   - address: delivery address (must not be empty)
//   - courierName: the courier who brings the order
//
// Returns:
//   - *HomeDelivery: always non-nil; the address stays unset if it was rejected
//   - error: ValueIsRequiredError if the address is empty
//
// A rejected address does not abort construction: the caller decides whether
// to warn and carry on or to stop.
func NewHomeDelivery(address string, courierName string) (*HomeDelivery, error) {
	d := &HomeDelivery{
		base:        newBase(),
		courierName: courierName,
	}

	return d, d.SetAddress(address)
}

// CourierName returns the courier who brings the order.
func (d *HomeDelivery) CourierName() string {
	return d.courierName
}

func (d *HomeDelivery) Describe() string {
	return fmt.Sprintf("order at address %s will be delivered by courier %s", d.address, d.courierName)
}

func (d *HomeDelivery) Kind() Kind {
	return KindHome
}
