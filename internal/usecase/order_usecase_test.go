package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderUCFixture(t *testing.T) (*OrderUseCase, *fakeProductRepo, *fakeOrderRepo, *fakeOutboxRepo, *fakeCacheRepo, *fakeDB) {
	t.Helper()

	customer, err := domain.NewCustomer(1, "Alice", "alice@example.com")
	require.NoError(t, err)

	productRepo := newFakeProductRepo(
		&domain.Product{ID: 1, Name: "Keyboard", Category: "electronics", Price: 4500, QuantityInStock: 10},
		&domain.Product{ID: 2, Name: "Monitor", Category: "electronics", Price: 30000, QuantityInStock: 5},
	)
	customerRepo := newFakeCustomerRepo(customer)
	orderRepo := newFakeOrderRepo()
	outboxRepo := &fakeOutboxRepo{}
	cacheRepo := newFakeCacheRepo()
	db := newFakeDB()

	uc := NewOrderUC(orderRepo, productRepo, customerRepo, outboxRepo, cacheRepo, db, noopLogger{})
	return uc, productRepo, orderRepo, outboxRepo, cacheRepo, db
}

func TestOrderUC_PlaceOrder(t *testing.T) {
	uc, productRepo, orderRepo, outboxRepo, cacheRepo, db := newOrderUCFixture(t)

	detail, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items: []OrderItemReq{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), detail.ID)
	assert.Equal(t, "Alice", detail.Customer.Name)
	require.Len(t, detail.Items, 2)
	assert.Equal(t, "Keyboard", detail.Items[0].ProductName)
	assert.Equal(t, int64(9000), detail.Items[0].Subtotal)
	assert.Equal(t, "Monitor", detail.Items[1].ProductName)
	assert.Equal(t, int64(30000), detail.Items[1].Subtotal)
	assert.Equal(t, int64(39000), detail.Total)

	// Остатки списаны
	assert.Equal(t, int64(8), productRepo.products[1].QuantityInStock)
	assert.Equal(t, int64(4), productRepo.products[2].QuantityInStock)

	// Заказ сохранён, транзакция закоммичена
	require.Len(t, orderRepo.saved, 1)
	assert.Equal(t, 1, db.tx.commits)
	assert.Zero(t, db.tx.rollbacks)

	// Событие outbox создано в той же транзакции
	require.Len(t, outboxRepo.created, 1)
	event := outboxRepo.created[0]
	assert.Equal(t, OrderPlaced, event.EventType)
	assert.Equal(t, int64(1), event.OrderID)

	var payload OrderPlacedPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, int64(39000), payload.Total)
	assert.Equal(t, 2, payload.ItemCount)
	assert.Equal(t, int64(1), payload.CustomerID)

	// Кэш товаров инвалидирован
	require.Len(t, cacheRepo.deletedIDs, 1)
	assert.Equal(t, []int64{1, 2}, cacheRepo.deletedIDs[0])
}

func TestOrderUC_PlaceOrder_OutOfStockRollsBack(t *testing.T) {
	uc, productRepo, orderRepo, outboxRepo, _, db := newOrderUCFixture(t)

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items: []OrderItemReq{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 50}, // больше остатка
		},
	})
	require.ErrorIs(t, err, e.ErrOutOfStock)

	var outOfStock *e.OutOfStockError
	require.ErrorAs(t, err, &outOfStock)
	assert.Equal(t, "Monitor", outOfStock.ProductName)
	assert.Equal(t, int64(50), outOfStock.Requested)
	assert.Equal(t, int64(5), outOfStock.Available)

	// Транзакция откатилась, заказ не сохранён, события нет
	assert.Zero(t, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, orderRepo.saved)
	assert.Empty(t, outboxRepo.created)

	// Второй товар нетронут
	assert.Equal(t, int64(5), productRepo.products[2].QuantityInStock)
}

func TestOrderUC_PlaceOrder_EmptyOrder(t *testing.T) {
	uc, _, orderRepo, _, _, db := newOrderUCFixture(t)

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{CustomerID: 1})
	require.ErrorIs(t, err, e.ErrEmptyOrder)

	assert.Empty(t, orderRepo.saved)
	assert.Zero(t, db.tx.commits)
	assert.Zero(t, db.tx.rollbacks, "транзакция не должна открываться до валидации")
}

func TestOrderUC_PlaceOrder_InvalidQuantity(t *testing.T) {
	uc, productRepo, _, _, _, _ := newOrderUCFixture(t)

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items: []OrderItemReq{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 0},
		},
	})
	require.ErrorIs(t, err, e.ErrInvalidQuantity)

	// Валидация всех позиций идёт до первого списания
	assert.Equal(t, int64(10), productRepo.products[1].QuantityInStock)
}

func TestOrderUC_PlaceOrder_CustomerNotFound(t *testing.T) {
	uc, _, orderRepo, _, _, _ := newOrderUCFixture(t)

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 99,
		Items:      []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, e.ErrCustomerNotFound)
	assert.Empty(t, orderRepo.saved)
}

func TestOrderUC_PlaceOrder_ProductNotFound(t *testing.T) {
	uc, _, orderRepo, outboxRepo, _, db := newOrderUCFixture(t)

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items:      []OrderItemReq{{ProductID: 42, Quantity: 1}},
	})
	require.ErrorIs(t, err, e.ErrProductNotFound)

	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, orderRepo.saved)
	assert.Empty(t, outboxRepo.created)
}

func TestOrderUC_PlaceOrder_SaveFailureRollsBack(t *testing.T) {
	uc, _, orderRepo, outboxRepo, cacheRepo, db := newOrderUCFixture(t)
	orderRepo.saveErr = errBoom

	_, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items:      []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, errBoom)

	assert.Zero(t, db.tx.commits)
	assert.Equal(t, 1, db.tx.rollbacks)
	assert.Empty(t, outboxRepo.created)
	assert.Empty(t, cacheRepo.deletedIDs, "кэш не трогается при откате")
}

func TestOrderUC_PlaceOrder_SnapshotsPrice(t *testing.T) {
	uc, productRepo, _, _, _, _ := newOrderUCFixture(t)

	detail, err := uc.PlaceOrder(context.Background(), &PlaceOrderReq{
		CustomerID: 1,
		Items:      []OrderItemReq{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, int64(4500), detail.Items[0].UnitPrice)

	// Последующее изменение цены не влияет на сохранённый заказ
	productRepo.products[1].Price = 9900
	assert.Equal(t, int64(4500), detail.Items[0].UnitPrice)
	assert.Equal(t, int64(9000), detail.Total)
}

func TestOrderUC_GetOrder(t *testing.T) {
	uc, _, orderRepo, _, _, _ := newOrderUCFixture(t)
	orderRepo.details[7] = &OrderDetail{
		ID:        7,
		Customer:  NewCustomerInfo(1, "Alice", "alice@example.com"),
		OrderDate: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		Items: []OrderItemDetail{
			{ProductID: 1, ProductName: "Keyboard", Quantity: 2, UnitPrice: 4500},
			{ProductID: 2, ProductName: "Monitor", Quantity: 1, UnitPrice: 30000},
		},
	}

	detail, err := uc.GetOrder(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(9000), detail.Items[0].Subtotal)
	assert.Equal(t, int64(30000), detail.Items[1].Subtotal)
	assert.Equal(t, int64(39000), detail.Total)
}

func TestOrderUC_GetOrder_NotFound(t *testing.T) {
	uc, _, _, _, _, _ := newOrderUCFixture(t)

	_, err := uc.GetOrder(context.Background(), 99)
	require.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestOrderUC_UpdateOrder(t *testing.T) {
	uc, _, orderRepo, _, _, db := newOrderUCFixture(t)
	orderRepo.details[3] = &OrderDetail{
		ID:       3,
		Customer: NewCustomerInfo(1, "Alice", "alice@example.com"),
		Items: []OrderItemDetail{
			{ProductID: 1, ProductName: "Keyboard", Quantity: 5, UnitPrice: 4500},
		},
	}

	detail, err := uc.UpdateOrder(context.Background(), &UpdateOrderReq{
		OrderID: 3,
		Items:   []OrderItemReq{{ProductID: 1, Quantity: 5}},
	})
	require.NoError(t, err)

	require.Len(t, orderRepo.replaced, 1)
	assert.Equal(t, int64(3), orderRepo.replaced[0].OrderID)
	assert.Equal(t, 1, db.tx.commits)
	assert.Equal(t, int64(22500), detail.Total)
}

func TestOrderUC_UpdateOrder_EmptyItems(t *testing.T) {
	uc, _, orderRepo, _, _, _ := newOrderUCFixture(t)

	_, err := uc.UpdateOrder(context.Background(), &UpdateOrderReq{OrderID: 3})
	require.ErrorIs(t, err, e.ErrEmptyOrder)
	assert.Empty(t, orderRepo.replaced)
}

func TestOrderUC_UpdateOrder_NotFound(t *testing.T) {
	uc, _, orderRepo, _, _, db := newOrderUCFixture(t)
	orderRepo.replaceErr = e.ErrOrderNotFound

	_, err := uc.UpdateOrder(context.Background(), &UpdateOrderReq{
		OrderID: 99,
		Items:   []OrderItemReq{{ProductID: 1, Quantity: 1}},
	})
	require.ErrorIs(t, err, e.ErrOrderNotFound)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestOrderUC_ListOrders(t *testing.T) {
	uc, _, orderRepo, _, _, _ := newOrderUCFixture(t)
	orderRepo.summaries = []OrderSummary{
		{ID: 2, Customer: NewCustomerInfo(1, "Alice", "alice@example.com")},
		{ID: 1, Customer: NewCustomerInfo(1, "Alice", "alice@example.com")},
	}

	orders, err := uc.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
}
