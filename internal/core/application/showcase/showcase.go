package showcase

import (
	"fmt"
	"io"

	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/delivery"
	"deliveryapp/internal/core/domain/model/order"
	"deliveryapp/internal/core/ports"
)

// Showcase runs the demonstration scenario against the delivery domain.
type Showcase struct {
	out   io.Writer
	clerk Clerk
}

// NewShowcase creates a showcase narrating to out and reporting refusals to logger.
// out and the logger's output are expected to be the same stream.
func NewShowcase(out io.Writer, logger ports.Logger) *Showcase {
	return &Showcase{
		out:   out,
		clerk: NewClerk(logger),
	}
}

// fixtures is the sample data the scenario works on.
type fixtures struct {
	alice, vladimir, aliceTwin *customer.Customer
	first, second, third       *order.Order
	orders                     *order.Collection
}

// Run executes the scenario:
//  1. compare customers by email and try an email without "@"
//  2. build one order per delivery variant and collect them
//  3. display every order
//  4. change a description, try an empty address, compare orders by number,
//     fix the colliding number
//  5. fetch an order by index and count the collection
//
// Rejected values are logged and the run goes on. Only a collection boundary
// error, an order that cannot be built, or a failed write stops it.
func (s *Showcase) Run() error {
	p := &printer{w: s.out}

	f, err := s.prepare()
	if err != nil {
		return fmt.Errorf("prepare sample data: %w", err)
	}

	p.printf("Alice == Alice (same email): %t\n", f.alice.Equal(f.aliceTwin))
	p.printf("Alice == Vladimir: %t\n", f.alice.Equal(f.vladimir))
	s.clerk.ChangeEmail(f.vladimir, "vladimir.p.nomail.com")
	p.println()

	for i, o := range []*order.Order{f.first, f.second, f.third} {
		if i > 0 {
			p.println()
		}
		p.check(o.DisplayDetails(p))
	}
	p.println()

	p.check(order.ChangeDescription(p, f.first, "Замена цвета на черный титан"))
	s.clerk.ChangeAddress(f.first.Delivery(), "")
	s.compare(p, f.first, f.third)
	s.clerk.UpdateOrderNumber(f.third, 3)
	s.compare(p, f.first, f.third)
	p.println()

	retrieved, err := f.orders.Get(1)
	if err != nil {
		return fmt.Errorf("get order by index: %w", err)
	}
	p.println("Order at index 1:")
	p.check(retrieved.DisplayDetails(p))
	p.println()

	p.printf("Total orders: %d\n", f.orders.Count())

	return p.err
}

func (s *Showcase) compare(p *printer, a, b *order.Order) {
	answer := "no"
	if order.IsSameOrder(a, b) {
		answer = "yes"
	}
	p.printf("Comparing orders #%d and #%d. Are they the same? - %s\n", a.Number(), b.Number(), answer)
}

func (s *Showcase) prepare() (fixtures, error) {
	var f fixtures

	f.alice = s.clerk.NewCustomer("Alice", "alice@nomail.com")
	f.vladimir = s.clerk.NewCustomer("Vladimir", "vladimir.p@nomail.com")
	f.aliceTwin = s.clerk.NewCustomer("Alice", "alice@nomail.com")

	var err error
	home := s.clerk.NewHomeDelivery("ул. Ленина 1а", "Иван Пушкин")
	if f.first, err = order.NewOrder(1, home, "iPhone 15", f.alice); err != nil {
		return fixtures{}, err
	}

	pickPoint := s.clerk.NewPickPointDelivery("ул. Республики 240", "Пункт выдачи Ozon", "980456")
	if f.second, err = order.NewOrder(2, pickPoint, "Мешок картошки", f.vladimir); err != nil {
		return fixtures{}, err
	}

	shop := delivery.NewShop("Эльдорадо", "Торговый центр 'Березка'")
	shopDelivery := s.clerk.NewShopDelivery("ул. Гагарина", shop)
	// Number 1 on purpose: it collides with the first order until fixed.
	if f.third, err = order.NewOrder(1, shopDelivery, "Папуаское копьё", f.aliceTwin); err != nil {
		return fixtures{}, err
	}

	f.orders = order.NewCollection()
	for _, o := range []*order.Order{f.first, f.second, f.third} {
		if err := f.orders.Add(o); err != nil {
			return fixtures{}, err
		}
	}

	return f, nil
}
