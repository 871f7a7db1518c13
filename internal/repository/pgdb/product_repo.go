package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Save вставляет товар и возвращает его с присвоенным идентификатором.
func (p *ProductRepo) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO products (name, category, price, quantity_in_stock)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, price, quantity_in_stock;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, product.Name, product.Category, product.Price, product.QuantityInStock).
		Scan(&model.ID, &model.Name, &model.Category, &model.Price, &model.QuantityInStock)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// Update полностью перезаписывает запись товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET name = $2, category = $3, price = $4, quantity_in_stock = $5
		WHERE id = $1;
	`

	tag, err := tx.Exec(ctx, query, product.ID, product.Name, product.Category, product.Price, product.QuantityInStock)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// FindByID возвращает товар или nil, если записи нет.
func (p *ProductRepo) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT id, name, category, price, quantity_in_stock
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(&model.ID, &model.Name, &model.Category, &model.Price, &model.QuantityInStock)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// FindAll возвращает все товары, отсортированные по имени.
func (p *ProductRepo) FindAll(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT id, name, category, price, quantity_in_stock
		FROM products
		ORDER BY name;
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Category, &model.Price, &model.QuantityInStock); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// DeductStock атомарно списывает остаток условным UPDATE: строка меняется
// только если остатка хватает. Возвращает снапшот товара после списания.
// Нулевое число строк означает либо отсутствие товара, либо нехватку остатка.
func (p *ProductRepo) DeductStock(ctx context.Context, productID, qty int64) (*usecase.StockDeduction, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET quantity_in_stock = quantity_in_stock - $2
		WHERE id = $1 AND quantity_in_stock >= $2
		RETURNING id, name, category, price, quantity_in_stock;
	`

	var model converter.ProductModel
	err = tx.QueryRow(ctx, query, productID, qty).
		Scan(&model.ID, &model.Name, &model.Category, &model.Price, &model.QuantityInStock)
	if err == nil {
		return usecase.NewStockDeduction(model.ID, model.Name, model.Category, model.Price, model.QuantityInStock), nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	// Различаем отсутствие товара и нехватку остатка для диагностики
	var name string
	var available int64
	err = tx.QueryRow(ctx, `SELECT name, quantity_in_stock FROM products WHERE id = $1;`, productID).
		Scan(&name, &available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return nil, e.NewOutOfStockError(name, qty, available)
}
