package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ToHTTPResponse отображает доменные ошибки на HTTP-статусы.
// Для OutOfStockError сохраняется диагностическое сообщение с количествами.
func ToHTTPResponse(err error) (int, string) {
	var outOfStock *e.OutOfStockError
	if errors.As(err, &outOfStock) {
		return http.StatusConflict, outOfStock.Error()
	}

	switch {
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidEmail):
		return http.StatusBadRequest, e.ErrInvalidEmail.Error()
	case errors.Is(err, e.ErrOutOfStock):
		return http.StatusConflict, e.ErrOutOfStock.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrProductNameRequired):
		return http.StatusBadRequest, e.ErrProductNameRequired.Error()
	case errors.Is(err, e.ErrCustomerNameRequired):
		return http.StatusBadRequest, e.ErrCustomerNameRequired.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrNegativeStock):
		return http.StatusBadRequest, e.ErrNegativeStock.Error()
	case errors.Is(err, e.ErrEmptyOrder):
		return http.StatusBadRequest, e.ErrEmptyOrder.Error()
	case errors.Is(err, e.ErrInvalidID):
		return http.StatusBadRequest, e.ErrInvalidID.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCustomerNotFound):
		return http.StatusNotFound, e.ErrCustomerNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrEmailAlreadyExists):
		return http.StatusConflict, e.ErrEmailAlreadyExists.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseID извлекает идентификатор из URL.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.ErrInvalidID
	}

	return id, nil
}

// decodeJSON читает тело запроса как JSON в dst.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	return nil
}

// parsePriceToCents конвертирует строку вида "599.99" или "600" в копейки.
// Отклоняет отрицательные значения, больше двух знаков после запятой
// и значения за разумным пределом.
func parsePriceToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, e.ErrInvalidPrice
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	maxPrice := decimal.NewFromInt(1_000_000_000)
	if d.GreaterThan(maxPrice) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0)

	return cents.IntPart(), nil
}

// centsToMoney форматирует копейки как денежную строку с двумя знаками.
func centsToMoney(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
