package delivery

import (
	"errors"
	"fmt"
	"io"

	"deliveryapp/internal/pkg/errs"
	"deliveryapp/internal/pkg/guard"
)

// ErrDeliveryIsNotConstructed is returned when a variant was not created via its constructor.
var ErrDeliveryIsNotConstructed = errors.New("delivery must be created via its constructor")

// Kind names a delivery variant.
type Kind string

const (
	KindHome      Kind = "home"
	KindPickPoint Kind = "pick_point"
	KindShop      Kind = "shop"
)

// Delivery is the capability shared by all delivery variants.
type Delivery interface {
	// Address returns the delivery address.
	Address() string

	// SetAddress replaces the address. An empty value is rejected and the
	// current address is kept.
	SetAddress(address string) error

	// Describe returns the human-readable description of how the order is delivered.
	Describe() string

	// Kind identifies the variant.
	Kind() Kind

	// Validate ensures the variant was created through its constructor.
	Validate() error

	sealed()
}

// Deliver writes the description of d as a single line to w.
func Deliver(w io.Writer, d Delivery) error {
	_, err := fmt.Fprintln(w, d.Describe())
	return err
}

// base carries the address every variant shares.
type base struct {
	address string
	guard   guard.ConstructorGuard
}

func newBase() base {
	return base{guard: guard.NewConstructorGuard()}
}

func (b *base) Address() string {
	return b.address
}

func (b *base) SetAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	b.address = address
	return nil
}

func (b *base) Validate() error {
	return b.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (b *base) sealed() {}
