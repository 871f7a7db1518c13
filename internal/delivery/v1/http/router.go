package http

import (
	_ "github.com/DRSN-tech/inventory-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(prUC usecase.ProductUC, custUC usecase.CustomerUC, orderUC usecase.OrderUC, analyticsUC usecase.AnalyticsUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerProductRoutes(v1, NewProductHandler(prUC, r.logger))
		registerCustomerRoutes(v1, NewCustomerHandler(custUC, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(orderUC, r.logger))
		registerAnalyticsRoutes(v1, NewAnalyticsHandler(analyticsUC, r.logger))
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", h.createProduct)
		pr.Get("/", h.listProducts)
		pr.Get("/{id}", h.getProduct)
		pr.Put("/{id}", h.updateProduct)
		pr.Delete("/{id}", h.deleteProduct)
		pr.Post("/{id}/add-stock", h.addStock)
		pr.Post("/{id}/remove-stock", h.removeStock)
	})
}

func registerCustomerRoutes(router chi.Router, h *CustomerHandler) {
	router.Route("/customers", func(c chi.Router) {
		c.Post("/", h.createCustomer)
		c.Get("/", h.listCustomers)
		c.Get("/{id}", h.getCustomer)
		c.Put("/{id}", h.updateCustomer)
		c.Delete("/{id}", h.deleteCustomer)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Post("/", h.placeOrder)
		o.Get("/", h.listOrders)
		o.Get("/{id}", h.getOrder)
		o.Put("/{id}", h.updateOrder)
		o.Delete("/{id}", h.deleteOrder)
	})
}

func registerAnalyticsRoutes(router chi.Router, h *AnalyticsHandler) {
	router.Route("/analytics", func(a chi.Router) {
		a.Get("/stock-report", h.stockReport)
		a.Get("/export/{table}", h.exportTable)
	})
}
