package showcase_test

import (
	"bytes"
	"testing"

	"deliveryapp/internal/core/application/showcase"
	"deliveryapp/internal/core/domain/model/customer"
	"deliveryapp/internal/core/domain/model/delivery"
	"deliveryapp/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClerk_ChangeEmail(t *testing.T) {
	t.Run("accepts a valid email", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		c, _ := customer.NewCustomer("Alice", "alice@nomail.com")

		// When
		ok := clerk.ChangeEmail(c, "alice@example.com")

		// Then
		assert.True(t, ok)
		assert.Equal(t, "alice@example.com", c.Email())
		assert.Equal(t, "INFO email of Alice changed to alice@example.com\n", buf.String())
	})

	t.Run("warns and keeps the previous email", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		c, _ := customer.NewCustomer("Alice", "alice@nomail.com")

		// When
		ok := clerk.ChangeEmail(c, "broken")

		// Then
		assert.False(t, ok)
		assert.Equal(t, "alice@nomail.com", c.Email())
		assert.Contains(t, buf.String(), "WARN change rejected: value is invalid: email")
	})
}

func TestClerk_ChangeAddress(t *testing.T) {
	t.Run("warns and keeps the previous address", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		d, _ := delivery.NewPickPointDelivery("ул. Республики 240", "Пункт выдачи Ozon", "980456")

		// When
		ok := clerk.ChangeAddress(d, "")

		// Then
		assert.False(t, ok)
		assert.Equal(t, "ул. Республики 240", d.Address())
		assert.Equal(t, "WARN change rejected: value is required: address\n", buf.String())
	})

	t.Run("accepts a non-empty address", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		d, _ := delivery.NewHomeDelivery("ул. Ленина 1а", "Иван Пушкин")

		ok := clerk.ChangeAddress(d, "ул. Ленина 2")

		assert.True(t, ok)
		assert.Equal(t, "ул. Ленина 2", d.Address())
		assert.Equal(t, "INFO home delivery address changed to ул. Ленина 2\n", buf.String())
	})
}

func TestClerk_UpdateOrderNumber(t *testing.T) {
	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		c, _ := customer.NewCustomer("Alice", "alice@nomail.com")
		d, _ := delivery.NewHomeDelivery("ул. Ленина 1а", "Иван Пушкин")
		o, err := order.NewOrder(1, d, "iPhone 15", c)
		require.NoError(t, err)
		return o
	}

	t.Run("accepts a positive number", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		o := newOrder(t)

		ok := clerk.UpdateOrderNumber(o, 3)

		assert.True(t, ok)
		assert.Equal(t, 3, o.Number())
		assert.Equal(t, "INFO order number changed from 1 to 3\n", buf.String())
	})

	t.Run("warns on a non-positive number", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		o := newOrder(t)

		ok := clerk.UpdateOrderNumber(o, 0)

		assert.False(t, ok)
		assert.Equal(t, 1, o.Number())
		assert.Equal(t,
			"WARN change rejected: value is invalid: number (cause: 0 is not greater than 0)\n",
			buf.String())
	})
}

func TestClerk_NewCustomer(t *testing.T) {
	t.Run("builds silently with a valid email", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})

		c := clerk.NewCustomer("Alice", "alice@nomail.com")

		require.NotNil(t, c)
		assert.Equal(t, "alice@nomail.com", c.Email())
		assert.Empty(t, buf.String())
	})

	t.Run("warns and leaves the email unset", func(t *testing.T) {
		// Given
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})

		// When
		c := clerk.NewCustomer("A", "broken")

		// Then
		require.NotNil(t, c)
		assert.Equal(t, "A", c.Name())
		assert.Empty(t, c.Email())
		assert.Equal(t,
			"WARN change rejected: value is invalid: email (cause: \"broken\" does not contain @)\n",
			buf.String())
	})
}

func TestClerk_NewDeliveries(t *testing.T) {
	t.Run("home delivery with empty address", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})

		d := clerk.NewHomeDelivery("", "Иван Пушкин")

		require.NotNil(t, d)
		assert.Empty(t, d.Address())
		assert.Equal(t, "WARN change rejected: value is required: address\n", buf.String())
	})

	t.Run("pick point delivery with empty address", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})

		d := clerk.NewPickPointDelivery("", "Пункт выдачи Ozon", "980456")

		require.NotNil(t, d)
		assert.Empty(t, d.Address())
		assert.Equal(t, "WARN change rejected: value is required: address\n", buf.String())
	})

	t.Run("shop delivery with empty address", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		shop := delivery.NewShop("Эльдорадо", "Торговый центр 'Березка'")

		d := clerk.NewShopDelivery("", shop)

		require.NotNil(t, d)
		assert.Empty(t, d.Address())
		assert.Same(t, shop, d.Shop())
		assert.Contains(t, buf.String(), "WARN change rejected: value is required: address")
	})

	t.Run("unset address can still be used in an order", func(t *testing.T) {
		var buf bytes.Buffer
		clerk := showcase.NewClerk(streamLogger{w: &buf})
		d := clerk.NewHomeDelivery("", "Иван Пушкин")
		c := clerk.NewCustomer("Alice", "alice@nomail.com")

		o, err := order.NewOrder(1, d, "iPhone 15", c)

		require.NoError(t, err)
		assert.Equal(t, "order at address  will be delivered by courier Иван Пушкин", o.Delivery().Describe())
	})
}
