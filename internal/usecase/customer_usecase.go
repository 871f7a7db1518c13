package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// CustomerUseCase реализует бизнес-логику покупателей.
// Email проверяется доменным конструктором, запись с некорректным email
// в хранилище попасть не может.
type CustomerUseCase struct {
	customerRepo CustomerRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCustomerUC(
	customerRepo CustomerRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CustomerUseCase {
	return &CustomerUseCase{
		customerRepo: customerRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

func (c *CustomerUseCase) CreateCustomer(ctx context.Context, req *CreateCustomerReq) (*CustomerInfo, error) {
	const op = "CustomerUseCase.CreateCustomer"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCustomerNameRequired)
	}

	customer, err := domain.NewCustomer(0, req.Name, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var saved *domain.Customer
	err = c.inTransaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = c.customerRepo.Save(ctx, customer)
		return err
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewCustomerInfo(saved.ID, saved.Name, saved.Email)
	return &info, nil
}

func (c *CustomerUseCase) UpdateCustomer(ctx context.Context, req *UpdateCustomerReq) (*CustomerInfo, error) {
	const op = "CustomerUseCase.UpdateCustomer"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCustomerNameRequired)
	}

	customer, err := domain.NewCustomer(req.ID, req.Name, req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = c.inTransaction(ctx, func(ctx context.Context) error {
		return c.customerRepo.Update(ctx, customer)
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	info := NewCustomerInfo(customer.ID, customer.Name, customer.Email)
	return &info, nil
}

func (c *CustomerUseCase) DeleteCustomer(ctx context.Context, id int64) error {
	const op = "CustomerUseCase.DeleteCustomer"

	err := c.inTransaction(ctx, func(ctx context.Context) error {
		return c.customerRepo.Delete(ctx, id)
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *CustomerUseCase) GetCustomer(ctx context.Context, id int64) (*CustomerInfo, error) {
	const op = "CustomerUseCase.GetCustomer"

	customer, err := c.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if customer == nil {
		return nil, e.Wrap(op, e.ErrCustomerNotFound)
	}

	info := NewCustomerInfo(customer.ID, customer.Name, customer.Email)
	return &info, nil
}

func (c *CustomerUseCase) ListCustomers(ctx context.Context) ([]CustomerInfo, error) {
	const op = "CustomerUseCase.ListCustomers"

	customers, err := c.customerRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := make([]CustomerInfo, 0, len(customers))
	for _, customer := range customers {
		result = append(result, NewCustomerInfo(customer.ID, customer.Name, customer.Email))
	}

	return result, nil
}

func (c *CustomerUseCase) inTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
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
