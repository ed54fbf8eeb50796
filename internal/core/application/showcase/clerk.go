package showcase

import (
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/delivery"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/core/ports"
)

// Clerk applies changes that the domain may refuse. A refusal is logged as a
// warning and the previous state stays in place (or the field stays unset for
// a new value); the caller learns the outcome from the returned bool or gets
// the partially built value back.
type Clerk struct {
	logger ports.Logger
}

// NewClerk creates a clerk reporting to logger.
func NewClerk(logger ports.Logger) Clerk {
	return Clerk{logger: logger}
}

// NewCustomer builds a customer. A rejected email is logged and left unset.
func (c Clerk) NewCustomer(name string, email string) *customer.Customer {
	cu, err := customer.NewCustomer(name, email)
	c.reject(err)
	return cu
}

// NewHomeDelivery builds a home delivery. A rejected address is logged and left unset.
func (c Clerk) NewHomeDelivery(address string, courierName string) *delivery.HomeDelivery {
	d, err := delivery.NewHomeDelivery(address, courierName)
	c.reject(err)
	return d
}

// NewPickPointDelivery builds a pickup point delivery. A rejected address is logged and left unset.
func (c Clerk) NewPickPointDelivery(address string, pickPointAddress string, accessCode string) *delivery.PickPointDelivery {
	d, err := delivery.NewPickPointDelivery(address, pickPointAddress, accessCode)
	c.reject(err)
	return d
}

// NewShopDelivery builds a shop delivery. Rejected fields are logged and left unset.
func (c Clerk) NewShopDelivery(address string, shop *delivery.Shop) *delivery.ShopDelivery {
	d, err := delivery.NewShopDelivery(address, shop)
	c.reject(err)
	return d
}

// ChangeEmail sets the customer's email.
func (c Clerk) ChangeEmail(cu *customer.Customer, email string) bool {
	return c.accept(cu.SetEmail(email), "email of %s changed to %s", cu.Name(), email)
}

// ChangeAddress sets the delivery address.
func (c Clerk) ChangeAddress(d delivery.Delivery, address string) bool {
	return c.accept(d.SetAddress(address), "%s delivery address changed to %s", d.Kind(), address)
}

// UpdateOrderNumber sets the order number.
func (c Clerk) UpdateOrderNumber(o *order.Order, number int) bool {
	previous := o.Number()
	return c.accept(o.UpdateNumber(number), "order number changed from %d to %d", previous, number)
}

func (c Clerk) accept(err error, format string, args ...any) bool {
	if c.reject(err) {
		return false
	}
	c.logger.Infof(format, args...)
	return true
}

// reject logs err as a warning and reports whether there was one.
func (c Clerk) reject(err error) bool {
	if err == nil {
		return false
	}
	c.logger.Warnf("change rejected: %v", err)
	return true
}
