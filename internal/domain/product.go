package domain

import "github.com/DRSN-tech/inventory-backend/pkg/e"

// Product описывает товар на складе
type Product struct {
	ID              int64
	Name            string
	Category        string
	Price           int64 // Цена хранится в копейках
	QuantityInStock int64
}

func NewProduct(name, category string, price, quantityInStock int64) *Product {
	return &Product{
		Name:            name,
		Category:        category,
		Price:           price,
		QuantityInStock: quantityInStock,
	}
}

// AddStock увеличивает остаток на qty единиц. qty должен быть положительным.
func (p *Product) AddStock(qty int64) error {
	if qty <= 0 {
		return e.ErrInvalidQuantity
	}

	p.QuantityInStock += qty
	return nil
}

// RemoveStock списывает qty единиц остатка. Единственный путь уменьшения остатка.
// При нехватке остатка возвращает OutOfStockError, остаток не меняется.
func (p *Product) RemoveStock(qty int64) error {
	if qty <= 0 {
		return e.ErrInvalidQuantity
	}

	if qty > p.QuantityInStock {
		return e.NewOutOfStockError(p.Name, qty, p.QuantityInStock)
	}

	p.QuantityInStock -= qty
	return nil
}

// ValueInStock возвращает стоимость текущего остатка в копейках.
func (p *Product) ValueInStock() int64 {
	return p.Price * p.QuantityInStock
}
