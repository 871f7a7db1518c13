package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CustomerRepo реализует репозиторий покупателей поверх PostgreSQL.
// Уникальность email обеспечивается ограничением таблицы.
type CustomerRepo struct {
	pool *pgxpool.Pool
	conv converter.CustomerConverter
}

func NewCustomerRepo(pool *pgxpool.Pool, conv converter.CustomerConverter) *CustomerRepo {
	return &CustomerRepo{pool: pool, conv: conv}
}

// Save вставляет покупателя и возвращает его с присвоенным идентификатором.
func (c *CustomerRepo) Save(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO customers (name, email)
		VALUES ($1, $2)
		RETURNING id, name, email;
	`

	var model converter.CustomerModel
	err = tx.QueryRow(ctx, query, customer.Name, customer.Email).
		Scan(&model.ID, &model.Name, &model.Email)
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrEmailAlreadyExists)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CustomerRepo) Update(ctx context.Context, customer *domain.Customer) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE customers
		SET name = $2, email = $3
		WHERE id = $1;
	`

	tag, err := tx.Exec(ctx, query, customer.ID, customer.Name, customer.Email)
	if err != nil {
		if postgresDuplicate(err) {
			return e.Wrap(whereami.WhereAmI(), e.ErrEmailAlreadyExists)
		}

		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
	}

	return nil
}

func (c *CustomerRepo) Delete(ctx context.Context, id int64) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if tag.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrCustomerNotFound)
	}

	return nil
}

// FindByID возвращает покупателя или nil, если записи нет.
func (c *CustomerRepo) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var model converter.CustomerModel
	err := c.pool.QueryRow(ctx, `SELECT id, name, email FROM customers WHERE id = $1;`, id).
		Scan(&model.ID, &model.Name, &model.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// FindAll возвращает всех покупателей, отсортированных по имени.
func (c *CustomerRepo) FindAll(ctx context.Context) ([]*domain.Customer, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, name, email FROM customers ORDER BY name;`)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.CustomerModel, 0)
	for rows.Next() {
		var model converter.CustomerModel
		if err := rows.Scan(&model.ID, &model.Name, &model.Email); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToArrEntity(models), nil
}
