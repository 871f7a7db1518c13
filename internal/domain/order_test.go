package domain

import (
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) *Customer {
	t.Helper()
	customer, err := NewCustomer(1, "Alice", "alice@example.com")
	require.NoError(t, err)
	return customer
}

func TestNewOrder_DefaultsDate(t *testing.T) {
	before := time.Now()
	order := NewOrder(0, newTestCustomer(t), time.Time{})

	assert.False(t, order.OrderDate.Before(before))
	assert.False(t, order.OrderDate.After(time.Now()))
}

func TestNewOrder_KeepsExplicitDate(t *testing.T) {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	order := NewOrder(0, newTestCustomer(t), date)

	assert.Equal(t, date, order.OrderDate)
}

func TestOrder_AddItem_DeductsStock(t *testing.T) {
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	product := NewProduct("Keyboard", "electronics", 4500, 10)

	item, err := order.AddItem(product, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), product.QuantityInStock)
	assert.Equal(t, int64(9000), item.Subtotal())
	assert.Len(t, order.Items, 1)
}

func TestOrder_AddItem_InvalidQuantity(t *testing.T) {
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	product := NewProduct("Keyboard", "electronics", 4500, 10)

	_, err := order.AddItem(product, 0)
	require.ErrorIs(t, err, e.ErrInvalidQuantity)
	assert.Empty(t, order.Items)
	assert.Equal(t, int64(10), product.QuantityInStock)
}

func TestOrder_AddItem_OutOfStock(t *testing.T) {
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	product := NewProduct("Keyboard", "electronics", 4500, 1)

	_, err := order.AddItem(product, 5)
	require.ErrorIs(t, err, e.ErrOutOfStock)
	assert.Empty(t, order.Items, "неудачная позиция не должна попадать в заказ")
	assert.Equal(t, int64(1), product.QuantityInStock)
}

func TestOrder_ItemsKeepOrder(t *testing.T) {
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	keyboard := NewProduct("Keyboard", "electronics", 4500, 10)
	monitor := NewProduct("Monitor", "electronics", 30000, 5)

	_, err := order.AddItem(keyboard, 2)
	require.NoError(t, err)
	_, err = order.AddItem(monitor, 1)
	require.NoError(t, err)

	require.Len(t, order.Items, 2)
	assert.Equal(t, "Keyboard", order.Items[0].Product.Name)
	assert.Equal(t, "Monitor", order.Items[1].Product.Name)
}

func TestOrder_CalculateTotal(t *testing.T) {
	// Alice заказывает две клавиатуры по 45.00 и монитор за 300.00
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	keyboard := NewProduct("Keyboard", "electronics", 4500, 10)
	monitor := NewProduct("Monitor", "electronics", 30000, 5)

	_, err := order.AddItem(keyboard, 2)
	require.NoError(t, err)
	_, err = order.AddItem(monitor, 1)
	require.NoError(t, err)

	assert.Equal(t, int64(39000), order.CalculateTotal())
}

func TestOrder_CalculateTotal_Empty(t *testing.T) {
	order := NewOrder(0, newTestCustomer(t), time.Time{})
	assert.Equal(t, int64(0), order.CalculateTotal())
}

func TestOrder_AppendItem_NoDeduction(t *testing.T) {
	order := NewOrder(7, newTestCustomer(t), time.Time{})
	product := NewProduct("Keyboard", "electronics", 4500, 10)

	item, err := NewOrderItem(product, 3)
	require.NoError(t, err)

	order.AppendItem(item)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(10), product.QuantityInStock)
}

func TestNewOrderItem_InvalidQuantity(t *testing.T) {
	product := NewProduct("Keyboard", "electronics", 4500, 10)

	for _, qty := range []int64{0, -2} {
		item, err := NewOrderItem(product, qty)
		require.ErrorIs(t, err, e.ErrInvalidQuantity)
		assert.Nil(t, item)
	}
}
