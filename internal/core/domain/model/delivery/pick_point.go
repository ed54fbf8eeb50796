package delivery

import "fmt"

// PickPointDelivery waits at a pickup point until the customer collects it
// with an access code.
type PickPointDelivery struct {
	base

	pickPointAddress string
	accessCode       string
}

// NewPickPointDelivery creates a delivery waiting at pickPointAddress.
//
// Parameters:
//   - address: delivery address (must not be empty)
//   - pickPointAddress: where the customer collects the order
//   - accessCode: code shown at the pickup point
//
// Returns:
//   - *PickPointDelivery: always non-nil; the address stays unset if it was rejected
//   - error: ValueIsRequiredError if the address is empty
func NewPickPointDelivery(address string, pickPointAddress string, accessCode string) (*PickPointDelivery, error) {
	d := &PickPointDelivery{
		base:             newBase(),
		pickPointAddress: pickPointAddress,
		accessCode:       accessCode,
	}

	return d, d.SetAddress(address)
}

// PickPointAddress returns the pickup point the order waits at.
func (d *PickPointDelivery) PickPointAddress() string {
	return d.pickPointAddress
}

// AccessCode returns the code the customer shows to collect the order.
func (d *PickPointDelivery) AccessCode() string {
	return d.accessCode
}

func (d *PickPointDelivery) Describe() string {
	return fmt.Sprintf("delivery to pickup point %s; use code %s to collect", d.pickPointAddress, d.accessCode)
}

func (d *PickPointDelivery) Kind() Kind {
	return KindPickPoint
}
