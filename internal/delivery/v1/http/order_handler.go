package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

// OrderRequest — тело запроса на оформление или обновление заказа.
// order_date опциональна, RFC3339. Порядок items сохраняется в заказе.
type OrderRequest struct {
	CustomerID int64              `json:"customer_id"`
	OrderDate  string             `json:"order_date,omitempty"`
	Items      []OrderItemRequest `json:"items"`
}

type OrderItemResponse struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	Subtotal    string `json:"subtotal"`
}

type OrderResponse struct {
	ID        int64               `json:"id"`
	Customer  CustomerResponse    `json:"customer"`
	OrderDate time.Time           `json:"order_date"`
	Items     []OrderItemResponse `json:"items"`
	Total     string              `json:"total"`
}

type OrderSummaryResponse struct {
	ID        int64            `json:"id"`
	Customer  CustomerResponse `json:"customer"`
	OrderDate time.Time        `json:"order_date"`
}

func newOrderResponse(detail *usecase.OrderDetail) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(detail.Items))
	for _, item := range detail.Items {
		items = append(items, OrderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   centsToMoney(item.UnitPrice),
			Subtotal:    centsToMoney(item.Subtotal),
		})
	}

	return &OrderResponse{
		ID:        detail.ID,
		Customer:  *newCustomerResponse(&detail.Customer),
		OrderDate: detail.OrderDate,
		Items:     items,
		Total:     centsToMoney(detail.Total),
	}
}

func parseOrderRequest(r *http.Request) (*OrderRequest, time.Time, error) {
	var req OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, time.Time{}, err
	}

	var orderDate time.Time
	if req.OrderDate != "" {
		parsed, err := time.Parse(time.RFC3339, req.OrderDate)
		if err != nil {
			return nil, time.Time{}, e.Wrap("order_date must be RFC3339", e.ErrStatusBadRequest)
		}
		orderDate = parsed
	}

	return &req, orderDate, nil
}

func toOrderItemReqs(items []OrderItemRequest) []usecase.OrderItemReq {
	reqs := make([]usecase.OrderItemReq, 0, len(items))
	for _, item := range items {
		reqs = append(reqs, usecase.OrderItemReq{ProductID: item.ProductID, Quantity: item.Quantity})
	}
	return reqs
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Атомарно списывает остатки и сохраняет заказ
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		OrderRequest	true	"Заказ"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Покупатель или товар не найден"
//	@Failure		409		{object}	ErrorResponse	"Недостаточно остатка"
//	@Router			/orders [post]
func (o *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	req, orderDate, err := parseOrderRequest(r)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	detail, err := o.orderUsecase.PlaceOrder(r.Context(), &usecase.PlaceOrderReq{
		CustomerID: req.CustomerID,
		OrderDate:  orderDate,
		Items:      toOrderItemReqs(req.Items),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newOrderResponse(detail))
}

// listOrders
//
//	@Summary	Список заказов
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}	OrderSummaryResponse
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	summaries, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		res = append(res, OrderSummaryResponse{
			ID:        s.ID,
			Customer:  *newCustomerResponse(&s.Customer),
			OrderDate: s.OrderDate,
		})
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getOrder
//
//	@Summary	Заказ по ID
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"ID заказа"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	detail, err := o.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(detail))
}

// updateOrder
//
//	@Summary		Обновление заказа
//	@Description	Заменяет дату и позиции заказа целиком
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"ID заказа"
//	@Param			order	body		OrderRequest	true	"Заказ"
//	@Success		200		{object}	OrderResponse
//	@Failure		404		{object}	ErrorResponse	"Заказ не найден"
//	@Router			/orders/{id} [put]
func (o *OrderHandler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	req, orderDate, err := parseOrderRequest(r)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	detail, err := o.orderUsecase.UpdateOrder(r.Context(), &usecase.UpdateOrderReq{
		OrderID:   id,
		OrderDate: orderDate,
		Items:     toOrderItemReqs(req.Items),
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderResponse(detail))
}

// deleteOrder
//
//	@Summary	Удаление заказа
//	@Tags		orders
//	@Param		id	path	int	true	"ID заказа"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Заказ не найден"
//	@Router		/orders/{id} [delete]
func (o *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := o.orderUsecase.DeleteOrder(r.Context(), id); err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
