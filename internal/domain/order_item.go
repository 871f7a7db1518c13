package domain

import "github.com/DRSN-tech/inventory-backend/pkg/e"

// OrderItem — одна позиция заказа: товар и количество.
// После создания количество и ссылка на товар не меняются,
// замена позиции выполняется целиком.
type OrderItem struct {
	Product  *Product
	Quantity int64
}

func NewOrderItem(product *Product, quantity int64) (*OrderItem, error) {
	if quantity <= 0 {
		return nil, e.ErrInvalidQuantity
	}

	return &OrderItem{
		Product:  product,
		Quantity: quantity,
	}, nil
}

// Subtotal возвращает стоимость позиции по текущей цене товара.
// Для сохранённых заказов историческая цена фиксируется отдельно
// снапшотом unit_price при записи.
func (i *OrderItem) Subtotal() int64 {
	return i.Product.Price * i.Quantity
}
