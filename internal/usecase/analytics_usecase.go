package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// AnalyticsUseCase реализует агрегатные запросы чтения: стоимость остатков,
// группировку по категориям и выгрузку таблиц в CSV. Транзакции не нужны.
type AnalyticsUseCase struct {
	productRepo  ProductRepository
	customerRepo CustomerRepository
	orderRepo    OrderRepository
	logger       logger.Logger
}

func NewAnalyticsUC(
	productRepo ProductRepository,
	customerRepo CustomerRepository,
	orderRepo OrderRepository,
	logger logger.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		logger:       logger,
	}
}

// StockReport возвращает суммарную стоимость остатков и товары по категориям.
func (a *AnalyticsUseCase) StockReport(ctx context.Context) (*StockReportRes, error) {
	const op = "AnalyticsUseCase.StockReport"

	products, err := a.productRepo.FindAll(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &StockReportRes{
		TotalStockValue: TotalStockValue(products),
		Categories:      ProductsByCategory(products),
	}, nil
}

// TotalStockValue возвращает суммарную стоимость остатков коллекции товаров.
func TotalStockValue(products []*domain.Product) int64 {
	var total int64
	for _, product := range products {
		total += product.ValueInStock()
	}

	return total
}

// ProductsByCategory группирует товары по категории. Группировка устойчивая:
// категории идут в порядке первого появления, товары внутри группы
// сохраняют порядок исходной коллекции.
func ProductsByCategory(products []*domain.Product) []CategoryGroup {
	index := make(map[string]int, len(products))
	groups := make([]CategoryGroup, 0)

	for _, product := range products {
		info := NewProductInfo(product.ID, product.Name, product.Category, product.Price, product.QuantityInStock)

		i, ok := index[product.Category]
		if !ok {
			i = len(groups)
			index[product.Category] = i
			groups = append(groups, CategoryGroup{Category: product.Category})
		}

		groups[i].Products = append(groups[i].Products, info)
	}

	return groups
}

// ExportTable выгружает одну из таблиц в CSV. Цены форматируются
// в денежном виде с двумя знаками.
func (a *AnalyticsUseCase) ExportTable(ctx context.Context, table string, w io.Writer) error {
	const op = "AnalyticsUseCase.ExportTable"

	writer := csv.NewWriter(w)

	var err error
	switch table {
	case "products":
		err = a.exportProducts(ctx, writer)
	case "customers":
		err = a.exportCustomers(ctx, writer)
	case "orders":
		err = a.exportOrders(ctx, writer)
	case "order_items":
		err = a.exportOrderItems(ctx, writer)
	default:
		err = fmt.Errorf("unknown table %q", table)
	}
	if err != nil {
		return e.Wrap(op, err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (a *AnalyticsUseCase) exportProducts(ctx context.Context, w *csv.Writer) error {
	products, err := a.productRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	if err := w.Write([]string{"id", "name", "category", "price", "quantity_in_stock"}); err != nil {
		return err
	}

	for _, p := range products {
		row := []string{
			strconv.FormatInt(p.ID, 10),
			p.Name,
			p.Category,
			centsToMoney(p.Price),
			strconv.FormatInt(p.QuantityInStock, 10),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (a *AnalyticsUseCase) exportCustomers(ctx context.Context, w *csv.Writer) error {
	customers, err := a.customerRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	if err := w.Write([]string{"id", "name", "email"}); err != nil {
		return err
	}

	for _, c := range customers {
		if err := w.Write([]string{strconv.FormatInt(c.ID, 10), c.Name, c.Email}); err != nil {
			return err
		}
	}

	return nil
}

func (a *AnalyticsUseCase) exportOrders(ctx context.Context, w *csv.Writer) error {
	orders, err := a.orderRepo.FindAll(ctx)
	if err != nil {
		return err
	}

	if err := w.Write([]string{"id", "customer_id", "order_date"}); err != nil {
		return err
	}

	for _, o := range orders {
		row := []string{
			strconv.FormatInt(o.ID, 10),
			strconv.FormatInt(o.Customer.ID, 10),
			o.OrderDate.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func (a *AnalyticsUseCase) exportOrderItems(ctx context.Context, w *csv.Writer) error {
	items, err := a.orderRepo.ListItems(ctx)
	if err != nil {
		return err
	}

	if err := w.Write([]string{"id", "order_id", "product_id", "quantity", "unit_price"}); err != nil {
		return err
	}

	for _, item := range items {
		row := []string{
			strconv.FormatInt(item.ID, 10),
			strconv.FormatInt(item.OrderID, 10),
			strconv.FormatInt(item.ProductID, 10),
			strconv.FormatInt(item.Quantity, 10),
			centsToMoney(item.UnitPrice),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// centsToMoney форматирует копейки как денежную строку с двумя знаками.
func centsToMoney(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
