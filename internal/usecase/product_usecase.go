package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// ProductUseCase реализует бизнес-логику каталога товаров и ведения остатков.
type ProductUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewProductUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// CreateProduct создаёт товар с начальным остатком (по умолчанию 0).
func (p *ProductUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.CreateProduct"

	if err := validateProduct(req.Name, req.Price, req.QuantityInStock); err != nil {
		return nil, e.Wrap(op, err)
	}

	var saved *domain.Product
	err := p.inTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = p.productRepo.Save(ctx, domain.NewProduct(req.Name, req.Category, req.Price, req.QuantityInStock))
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewProductInfo(saved.ID, saved.Name, saved.Category, saved.Price, saved.QuantityInStock)
	return &info, nil
}

// UpdateProduct полностью обновляет запись товара.
func (p *ProductUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error) {
	const op = "ProductUseCase.UpdateProduct"

	if err := validateProduct(req.Name, req.Price, req.QuantityInStock); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := &domain.Product{
		ID:              req.ID,
		Name:            req.Name,
		Category:        req.Category,
		Price:           req.Price,
		QuantityInStock: req.QuantityInStock,
	}

	err := p.inTransaction(ctx, func(ctx context.Context) error {
		return p.productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateProduct(ctx, req.ID)

	info := NewProductInfo(product.ID, product.Name, product.Category, product.Price, product.QuantityInStock)
	return &info, nil
}

func (p *ProductUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "ProductUseCase.DeleteProduct"

	err := p.inTransaction(ctx, func(ctx context.Context) error {
		return p.productRepo.Delete(ctx, id)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	p.invalidateProduct(ctx, id)
	return nil
}

// GetProduct возвращает товар, сначала проверяя кэш. Промах докладывается
// в кэш фоном, чтобы не задерживать ответ.
func (p *ProductUseCase) GetProduct(ctx context.Context, id int64) (*ProductInfo, error) {
	const op = "ProductUseCase.GetProduct"

	cached, err := p.cacheRepo.GetProducts(ctx, []int64{id})
	if err == nil {
		if info, ok := cached[id]; ok {
			return &info, nil
		}
	}

	product, err := p.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	info := NewProductInfo(product.ID, product.Name, product.Category, product.Price, product.QuantityInStock)

	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := p.cacheRepo.SetProducts(bgCtx, []ProductInfo{info}); err != nil {
			p.logger.Warnf("Failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return &info, nil
}

func (p *ProductUseCase) ListProducts(ctx context.Context) ([]ProductInfo, error) {
	const op = "ProductUseCase.ListProducts"

	products, err := p.productRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]ProductInfo, 0, len(products))
	for _, product := range products {
		result = append(result, NewProductInfo(product.ID, product.Name, product.Category, product.Price, product.QuantityInStock))
	}

	return result, nil
}

// AddStock увеличивает остаток товара через доменную операцию.
func (p *ProductUseCase) AddStock(ctx context.Context, req *StockReq) (*ProductInfo, error) {
	const op = "ProductUseCase.AddStock"

	return p.mutateStock(ctx, op, req, func(product *domain.Product) error {
		return product.AddStock(req.Quantity)
	})
}

// RemoveStock списывает остаток товара. Нехватка остатка возвращает
// OutOfStockError с диагностикой, остаток не меняется.
func (p *ProductUseCase) RemoveStock(ctx context.Context, req *StockReq) (*ProductInfo, error) {
	const op = "ProductUseCase.RemoveStock"

	return p.mutateStock(ctx, op, req, func(product *domain.Product) error {
		return product.RemoveStock(req.Quantity)
	})
}

// mutateStock применяет доменную операцию к остатку товара и сохраняет
// результат транзакционно.
func (p *ProductUseCase) mutateStock(ctx context.Context, op string, req *StockReq, mutate func(*domain.Product) error) (*ProductInfo, error) {
	product, err := p.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if product == nil {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	if err := mutate(product); err != nil {
		return nil, e.Wrap(op, err)
	}

	err = p.inTransaction(ctx, func(ctx context.Context) error {
		return p.productRepo.Update(ctx, product)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	p.invalidateProduct(ctx, req.ProductID)

	info := NewProductInfo(product.ID, product.Name, product.Category, product.Price, product.QuantityInStock)
	return &info, nil
}

// inTransaction выполняет fn внутри одной pgx-транзакции с откатом при ошибке.
func (p *ProductUseCase) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	err = tx.Commit(ctx)
	return err
}

func (p *ProductUseCase) invalidateProduct(ctx context.Context, id int64) {
	if err := p.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		p.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

// validateProduct проверяет инварианты товара: имя, неотрицательные цена и остаток.
func validateProduct(name string, price, quantityInStock int64) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price < 0 {
		return e.ErrInvalidPrice
	}

	if quantityInStock < 0 {
		return e.ErrNegativeStock
	}

	return nil
}
