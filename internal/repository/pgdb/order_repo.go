package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Запись шапки и позиций идёт в транзакции вызывающего, половинный
// заказ в базе невозможен.
type OrderRepo struct {
	pool *pgxpool.Pool
}

func NewOrderRepo(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// Save вставляет шапку заказа и все позиции, фиксируя unit_price снапшотом
// цены на момент сохранения. Присваивает заказу идентификатор.
func (o *OrderRepo) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	headerQuery := `
		INSERT INTO orders (customer_id, order_date)
		VALUES ($1, $2)
		RETURNING id;
	`

	if err := tx.QueryRow(ctx, headerQuery, order.Customer.ID, order.OrderDate).Scan(&order.ID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		VALUES ($1, $2, $3, $4);
	`

	// Позиции вставляются в порядке добавления в заказ
	for _, item := range order.Items {
		if _, err := tx.Exec(ctx, itemQuery, order.ID, item.Product.ID, item.Quantity, item.Product.Price); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return order, nil
}

// Replace обновляет дату шапки, удаляет все позиции заказа и вставляет
// новый набор целиком. Снапшот unit_price берётся из текущей цены товара
// на стороне базы.
func (o *OrderRepo) Replace(ctx context.Context, req *usecase.UpdateOrderReq) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `UPDATE orders SET order_date = $2 WHERE id = $1;`, req.OrderID, req.OrderDate)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1;`, req.OrderID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price)
		SELECT $1, id, $3, price
		FROM products
		WHERE id = $2;
	`

	for _, item := range req.Items {
		tag, err := tx.Exec(ctx, itemQuery, req.OrderID, item.ProductID, item.Quantity)
		if err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}

		if tag.RowsAffected() == 0 {
			return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
	}

	return nil
}

// Delete удаляет шапку заказа; позиции удаляются каскадно по внешнему ключу.
func (o *OrderRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// FindByID собирает заказ из двух выборок: шапка с покупателем и позиции
// с товарами. Возвращает nil, если заказа нет.
func (o *OrderRepo) FindByID(ctx context.Context, id int64) (*usecase.OrderDetail, error) {
	headerQuery := `
		SELECT o.id, o.order_date, c.id, c.name, c.email
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		WHERE o.id = $1;
	`

	var detail usecase.OrderDetail
	err := o.pool.QueryRow(ctx, headerQuery, id).
		Scan(&detail.ID, &detail.OrderDate, &detail.Customer.ID, &detail.Customer.Name, &detail.Customer.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemsQuery := `
		SELECT oi.product_id, p.name, oi.quantity, oi.unit_price
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
		ORDER BY oi.id;
	`

	rows, err := o.pool.Query(ctx, itemsQuery, id)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	for rows.Next() {
		var item usecase.OrderItemDetail
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		detail.Items = append(detail.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &detail, nil
}

// FindAll возвращает шапки всех заказов с покупателями по убыванию даты.
// Позиции намеренно не загружаются.
func (o *OrderRepo) FindAll(ctx context.Context) ([]usecase.OrderSummary, error) {
	query := `
		SELECT o.id, o.order_date, c.id, c.name, c.email
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		ORDER BY o.order_date DESC;
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.OrderSummary, 0)
	for rows.Next() {
		var summary usecase.OrderSummary
		if err := rows.Scan(&summary.ID, &summary.OrderDate, &summary.Customer.ID, &summary.Customer.Name, &summary.Customer.Email); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

// ListItems возвращает все строки order_items для выгрузки.
func (o *OrderRepo) ListItems(ctx context.Context) ([]usecase.OrderItemRecord, error) {
	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.OrderItemRecord, 0)
	for rows.Next() {
		var record usecase.OrderItemRecord
		if err := rows.Scan(&record.ID, &record.OrderID, &record.ProductID, &record.Quantity, &record.UnitPrice); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, record)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}
