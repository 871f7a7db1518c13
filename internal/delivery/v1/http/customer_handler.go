package http

import (
	"net/http"

	"github.com/DRSN-tech/inventory-backend/internal/usecase"
	"github.com/DRSN-tech/inventory-backend/pkg/logger"
)

type CustomerHandler struct {
	customerUsecase usecase.CustomerUC
	logger          logger.Logger
}

func NewCustomerHandler(customerUsecase usecase.CustomerUC, logger logger.Logger) *CustomerHandler {
	return &CustomerHandler{customerUsecase: customerUsecase, logger: logger}
}

type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func newCustomerResponse(info *usecase.CustomerInfo) *CustomerResponse {
	return &CustomerResponse{
		ID:    info.ID,
		Name:  info.Name,
		Email: info.Email,
	}
}

// createCustomer
//
//	@Summary	Создание покупателя
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CustomerRequest	true	"Покупатель"
//	@Success	201			{object}	CustomerResponse
//	@Failure	400			{object}	ErrorResponse	"Некорректный email"
//	@Failure	409			{object}	ErrorResponse	"Email уже занят"
//	@Router		/customers [post]
func (c *CustomerHandler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.customerUsecase.CreateCustomer(r.Context(), &usecase.CreateCustomerReq{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newCustomerResponse(info))
}

// listCustomers
//
//	@Summary	Список покупателей
//	@Tags		customers
//	@Produce	json
//	@Success	200	{array}	CustomerResponse
//	@Router		/customers [get]
func (c *CustomerHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	infos, err := c.customerUsecase.ListCustomers(r.Context())
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	res := make([]CustomerResponse, 0, len(infos))
	for i := range infos {
		res = append(res, *newCustomerResponse(&infos[i]))
	}

	WriteSuccess(w, http.StatusOK, res)
}

// getCustomer
//
//	@Summary	Покупатель по ID
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"ID покупателя"
//	@Success	200	{object}	CustomerResponse
//	@Failure	404	{object}	ErrorResponse	"Покупатель не найден"
//	@Router		/customers/{id} [get]
func (c *CustomerHandler) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.customerUsecase.GetCustomer(r.Context(), id)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCustomerResponse(info))
}

// updateCustomer
//
//	@Summary	Обновление покупателя
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int				true	"ID покупателя"
//	@Param		customer	body		CustomerRequest	true	"Покупатель"
//	@Success	200			{object}	CustomerResponse
//	@Failure	404			{object}	ErrorResponse	"Покупатель не найден"
//	@Router		/customers/{id} [put]
func (c *CustomerHandler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	info, err := c.customerUsecase.UpdateCustomer(r.Context(), &usecase.UpdateCustomerReq{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCustomerResponse(info))
}

// deleteCustomer
//
//	@Summary	Удаление покупателя
//	@Tags		customers
//	@Param		id	path	int	true	"ID покупателя"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse	"Покупатель не найден"
//	@Router		/customers/{id} [delete]
func (c *CustomerHandler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.customerUsecase.DeleteCustomer(r.Context(), id); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
