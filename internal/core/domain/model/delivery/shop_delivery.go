package delivery

import (
	"errors"
	"fmt"

	"deliveryapp/internal/pkg/errs"
)

// ShopDelivery hands the order over in a shop. The shop is referenced, not
// copied: renaming the shop changes what Describe reports.
type ShopDelivery struct {
	base

	shop *Shop
}

// NewShopDelivery creates a delivery handed over in shop.
//
// Parameters:
//   - address: delivery address (must not be empty)
//   - shop: the shop receiving the order (must not be nil)
//
// Returns:
//   - *ShopDelivery: always non-nil; rejected fields stay unset
//   - error: joined ValueIsRequiredErrors for an empty address and a nil shop
func NewShopDelivery(address string, shop *Shop) (*ShopDelivery, error) {
	d := &ShopDelivery{
		base: newBase(),
	}

	return d, errors.Join(d.SetAddress(address), d.setShop(shop))
}

// Shop returns the shop the order is delivered to.
func (d *ShopDelivery) Shop() *Shop {
	return d.shop
}

func (d *ShopDelivery) Describe() string {
	shop := d.shop
	if shop == nil {
		shop = &Shop{}
	}
	return fmt.Sprintf("order delivered to shop %s located at %s", shop.Name(), shop.Location())
}

func (d *ShopDelivery) Kind() Kind {
	return KindShop
}

func (d *ShopDelivery) setShop(shop *Shop) error {
	if shop == nil {
		return errs.NewValueIsRequiredError("shop")
	}
	d.shop = shop
	return nil
}
