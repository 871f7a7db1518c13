package domain

import (
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

// Order описывает заказ покупателя: шапку и упорядоченный список позиций.
// Порядок позиций совпадает с порядком добавления.
type Order struct {
	ID        int64
	Customer  *Customer
	OrderDate time.Time
	Items     []*OrderItem
}

func NewOrder(id int64, customer *Customer, orderDate time.Time) *Order {
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &Order{
		ID:        id,
		Customer:  customer,
		OrderDate: orderDate,
	}
}

// AddItem списывает остаток товара и добавляет позицию в конец заказа.
// Если списание не удалось, заказ остаётся без изменений.
func (o *Order) AddItem(product *Product, quantity int64) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, e.ErrInvalidQuantity
	}

	if err := product.RemoveStock(quantity); err != nil {
		return nil, err
	}

	item := &OrderItem{Product: product, Quantity: quantity}
	o.Items = append(o.Items, item)
	return item, nil
}

// AppendItem добавляет уже созданную позицию без списания остатка.
// Используется при сборке заказа из хранилища, где остаток списан в транзакции.
func (o *Order) AppendItem(item *OrderItem) {
	o.Items = append(o.Items, item)
}

// CalculateTotal возвращает сумму заказа как сумму стоимостей позиций.
// Считается заново при каждом вызове, кэша нет.
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}

	return total
}
