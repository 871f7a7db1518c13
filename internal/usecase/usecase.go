package usecase

import (
	"context"
	"io"
)

type ProductUC interface {
	CreateProduct(ctx context.Context, req *CreateProductReq) (*ProductInfo, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*ProductInfo, error)
	DeleteProduct(ctx context.Context, id int64) error
	GetProduct(ctx context.Context, id int64) (*ProductInfo, error)
	ListProducts(ctx context.Context) ([]ProductInfo, error)
	AddStock(ctx context.Context, req *StockReq) (*ProductInfo, error)
	RemoveStock(ctx context.Context, req *StockReq) (*ProductInfo, error)
}

type CustomerUC interface {
	CreateCustomer(ctx context.Context, req *CreateCustomerReq) (*CustomerInfo, error)
	UpdateCustomer(ctx context.Context, req *UpdateCustomerReq) (*CustomerInfo, error)
	DeleteCustomer(ctx context.Context, id int64) error
	GetCustomer(ctx context.Context, id int64) (*CustomerInfo, error)
	ListCustomers(ctx context.Context) ([]CustomerInfo, error)
}

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*OrderDetail, error)
	UpdateOrder(ctx context.Context, req *UpdateOrderReq) (*OrderDetail, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetOrder(ctx context.Context, id int64) (*OrderDetail, error)
	ListOrders(ctx context.Context) ([]OrderSummary, error)
}

type AnalyticsUC interface {
	StockReport(ctx context.Context) (*StockReportRes, error)
	ExportTable(ctx context.Context, table string, w io.Writer) error
}
