package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUC
	logger           logger.Logger
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUC, logger logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase, logger: logger}
}

type CategoryGroupResponse struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}

type StockReportResponse struct {
	TotalStockValue string                  `json:"total_stock_value"`
	Categories      []CategoryGroupResponse `json:"categories"`
}

// stockReport
//
//	@Summary		Отчет по остаткам
//	@Description	Суммарная стоимость остатков и товары по категориям
//	@Tags			analytics
//	@Produce		json
//	@Success		200	{object}	StockReportResponse
//	@Router			/analytics/stock-report [get]
func (a *AnalyticsHandler) stockReport(w http.ResponseWriter, r *http.Request) {
	report, err := a.analyticsUsecase.StockReport(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	categories := make([]CategoryGroupResponse, 0, len(report.Categories))
	for _, group := range report.Categories {
		categories = append(categories, CategoryGroupResponse{
			Category: group.Category,
			Products: newProductResponses(group.Products),
		})
	}

	WriteSuccess(w, http.StatusOK, &StockReportResponse{
		TotalStockValue: centsToMoney(report.TotalStockValue),
		Categories:      categories,
	})
}

// exportTable
//
//	@Summary		Выгрузка таблицы в CSV
//	@Description	Поддерживаются таблицы products, customers, orders, order_items
//	@Tags			analytics
//	@Produce		text/csv
//	@Param			table	path		string	true	"Имя таблицы"
//	@Success		200		{string}	string	"CSV"
//	@Failure		400		{object}	ErrorResponse	"Неизвестная таблица"
//	@Router			/analytics/export/{table} [get]
func (a *AnalyticsHandler) exportTable(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")

	switch table {
	case "products", "customers", "orders", "order_items":
	default:
		WriteError(w, e.Wrap(table, e.ErrStatusBadRequest))
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+table+`.csv"`)

	if err := a.analyticsUsecase.ExportTable(r.Context(), table, w); err != nil {
		// Часть CSV могла уже уйти клиенту, заголовки менять поздно.
		a.logger.Warnf("%s", err.Error())
		return
	}
}
