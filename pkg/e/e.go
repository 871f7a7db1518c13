package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Доменные ошибки
	ErrInvalidQuantity = fmt.Errorf("quantity must be a positive integer")
	ErrInvalidEmail    = fmt.Errorf("invalid email address")
	ErrOutOfStock      = fmt.Errorf("product is out of stock")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrCustomerNameRequired = fmt.Errorf("customer name is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrNegativeStock        = fmt.Errorf("stock must not be negative")
	ErrEmptyOrder           = fmt.Errorf("order must contain at least one item")
	ErrInvalidID            = fmt.Errorf("invalid identifier")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrCustomerNotFound = fmt.Errorf("customer not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")

	// 409 Conflict
	ErrEmailAlreadyExists = fmt.Errorf("email already exists")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// OutOfStockError несёт диагностику нехватки остатка: товар, запрошено, доступно.
// errors.Is(err, ErrOutOfStock) возвращает true для этой ошибки.
type OutOfStockError struct {
	ProductName string
	Requested   int64
	Available   int64
}

func NewOutOfStockError(productName string, requested, available int64) *OutOfStockError {
	return &OutOfStockError{
		ProductName: productName,
		Requested:   requested,
		Available:   available,
	}
}

func (o *OutOfStockError) Error() string {
	return fmt.Sprintf("out of stock: %q, requested %d, available %d",
		o.ProductName, o.Requested, o.Available)
}

func (o *OutOfStockError) Unwrap() error {
	return ErrOutOfStock
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
