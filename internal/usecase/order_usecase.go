package usecase

import (
	"context"
	"encoding/json"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/DRSN-tech/inventory-backend/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует бизнес-логику заказов: транзакционное создание
// заказа со списанием остатков, обновление с полной заменой позиций и чтение.
type OrderUseCase struct {
	orderRepo    OrderRepository
	productRepo  ProductRepository
	customerRepo CustomerRepository
	outboxRepo   OutboxRepository
	cacheRepo    CacheRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		outboxRepo:   outboxRepo,
		cacheRepo:    cacheRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// PlaceOrder создаёт заказ одной транзакцией: списание остатка по каждой
// позиции, запись шапки и позиций со снапшотом цены, событие в outbox.
// Любая ошибка откатывает всё, половинный заказ в базе невозможен.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*OrderDetail, error) {
	const op = "OrderUseCase.PlaceOrder"

	// Валидация всех позиций до первой мутации
	if err := validateOrderItems(req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	customer, err := o.customerRepo.FindByID(ctx, req.CustomerID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if customer == nil {
		return nil, e.Wrap(op, e.ErrCustomerNotFound)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// При любой ошибке транзакция откатывается: списания остатков,
	// шапка, позиции и событие outbox отменяются вместе
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	order := domain.NewOrder(0, customer, req.OrderDate)
	for _, itemReq := range req.Items {
		var deduction *StockDeduction
		deduction, err = o.productRepo.DeductStock(ctx, itemReq.ProductID, itemReq.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		var item *domain.OrderItem
		item, err = domain.NewOrderItem(&domain.Product{
			ID:              deduction.ProductID,
			Name:            deduction.Name,
			Category:        deduction.Category,
			Price:           deduction.UnitPrice,
			QuantityInStock: deduction.Remaining,
		}, itemReq.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		order.AppendItem(item)
	}

	order, err = o.orderRepo.Save(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.createOutboxEvent(ctx, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	o.invalidateProducts(ctx, req.Items)

	return newOrderDetail(order), nil
}

// UpdateOrder обновляет дату шапки и целиком заменяет позиции заказа
// в одной транзакции. Снапшот unit_price берётся заново из текущих цен.
func (o *OrderUseCase) UpdateOrder(ctx context.Context, req *UpdateOrderReq) (*OrderDetail, error) {
	const op = "OrderUseCase.UpdateOrder"

	if err := validateOrderItems(req.Items); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	if err = o.orderRepo.Replace(ctx, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return o.GetOrder(ctx, req.OrderID)
}

// DeleteOrder удаляет заказ; позиции каскадно удаляются вместе с шапкой,
// товары не затрагиваются.
func (o *OrderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	const op = "OrderUseCase.DeleteOrder"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	if err = o.orderRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// GetOrder возвращает заказ с позициями. Сумма и стоимости позиций
// считаются по снапшоту unit_price, позднейшие изменения цен товаров
// на сохранённый заказ не влияют.
func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*OrderDetail, error) {
	const op = "OrderUseCase.GetOrder"

	detail, err := o.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if detail == nil {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	var total int64
	for i := range detail.Items {
		detail.Items[i].Subtotal = detail.Items[i].UnitPrice * detail.Items[i].Quantity
		total += detail.Items[i].Subtotal
	}
	detail.Total = total

	return detail, nil
}

// ListOrders возвращает шапки заказов по убыванию даты. Позиции намеренно
// не загружаются, для них нужен отдельный запрос одного заказа.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]OrderSummary, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// createOutboxEvent кладёт событие order_placed в outbox той же транзакцией.
func (o *OrderUseCase) createOutboxEvent(ctx context.Context, order *domain.Order) error {
	eventID := uuid.NewString()
	payload, err := json.Marshal(OrderPlacedPayload{
		EventID:    eventID,
		OrderID:    order.ID,
		CustomerID: order.Customer.ID,
		Total:      order.CalculateTotal(),
		ItemCount:  len(order.Items),
		OrderDate:  order.OrderDate,
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, OrderPlaced, order.ID, payload))
	return err
}

// invalidateProducts сбрасывает кэш товаров, остатки которых изменил заказ.
func (o *OrderUseCase) invalidateProducts(ctx context.Context, items []OrderItemReq) {
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	if err := o.cacheRepo.DeleteProducts(ctx, ids); err != nil {
		o.logger.Warnf("Failed to invalidate product cache: %v", err)
	}
}

// validateOrderItems проверяет все пары (товар, количество) до каких-либо мутаций.
func validateOrderItems(items []OrderItemReq) error {
	if len(items) == 0 {
		return e.ErrEmptyOrder
	}

	for _, item := range items {
		if item.Quantity <= 0 {
			return e.ErrInvalidQuantity
		}
	}

	return nil
}

// newOrderDetail строит DTO заказа из доменной сущности после сохранения.
func newOrderDetail(order *domain.Order) *OrderDetail {
	items := make([]OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDetail{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.Product.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	return &OrderDetail{
		ID:        order.ID,
		Customer:  NewCustomerInfo(order.Customer.ID, order.Customer.Name, order.Customer.Email),
		OrderDate: order.OrderDate,
		Items:     items,
		Total:     order.CalculateTotal(),
	}
}
