package domain

import (
	"strings"
	"time"
)

// Customer — покупатель. Sub — внешний идентификатор из системы
// аутентификации; уникален среди всех покупателей.
type Customer struct {
	Entity

	Sub       string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	// DateOfBirth — нулевое время означает «не указана».
	DateOfBirth time.Time
}

// NewCustomer создаёт покупателя; sub обязателен.
func NewCustomer(sub, username string) (Customer, error) {
	customer := Customer{
		Entity:   NewEntity(),
		Sub:      sub,
		Username: username,
	}
	if errs := customer.Validate(); len(errs) > 0 {
		return Customer{}, validationError(errs)
	}
	return customer, nil
}

// Validate проверяет базовые инварианты покупателя.
func (c *Customer) Validate() []error {
	var errs []error

	if strings.TrimSpace(c.Sub) == "" {
		errs = append(errs, ErrCustomerSubRequired)
	}

	return errs
}

// FullName собирает отображаемое имя из имеющихся полей.
func (c *Customer) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if full != "" {
		return full
	}
	return c.Username
}
