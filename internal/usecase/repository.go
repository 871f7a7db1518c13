package usecase

import (
	"context"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
)

type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindAll(ctx context.Context) ([]*domain.Product, error)
	// DeductStock атомарно списывает остаток условным UPDATE внутри текущей
	// транзакции и возвращает снапшот товара после списания.
	DeductStock(ctx context.Context, productID, qty int64) (*StockDeduction, error)
}

type CustomerRepository interface {
	Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]*domain.Customer, error)
}

type OrderRepository interface {
	// Save записывает шапку заказа и все его позиции внутри текущей транзакции.
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// Replace обновляет дату шапки и целиком переписывает позиции заказа.
	Replace(ctx context.Context, req *UpdateOrderReq) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*OrderDetail, error)
	FindAll(ctx context.Context) ([]OrderSummary, error)
	ListItems(ctx context.Context) ([]OrderItemRecord, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []int64) (map[int64]ProductInfo, error)
	SetProducts(ctx context.Context, products []ProductInfo) error
	DeleteProducts(ctx context.Context, ids []int64) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}
