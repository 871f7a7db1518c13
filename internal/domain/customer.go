package domain

import (
	"regexp"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// Customer описывает покупателя. Email валидируется при создании,
// экземпляр с некорректным email существовать не может.
type Customer struct {
	ID    int64
	Name  string
	Email string
}

func NewCustomer(id int64, name, email string) (*Customer, error) {
	customer := &Customer{
		ID:    id,
		Name:  name,
		Email: email,
	}

	if err := customer.ValidateEmail(); err != nil {
		return nil, err
	}

	return customer, nil
}

// ValidateEmail проверяет формат email. Идемпотентна, без побочных эффектов.
func (c *Customer) ValidateEmail() error {
	if !emailRegexp.MatchString(c.Email) {
		return e.Wrap(c.Email, e.ErrInvalidEmail)
	}

	return nil
}
