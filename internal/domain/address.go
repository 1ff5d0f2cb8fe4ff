package domain

import "strings"

// Address — адрес доставки, принадлежащий одному покупателю.
type Address struct {
	Entity

	CustomerID   int64
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	Country      string
	ZipCode      string
	// IsActive позволяет скрыть адрес, не удаляя историю заказов.
	IsActive bool
}

// NewAddress создаёт активный адрес для покупателя.
func NewAddress(customerID int64, line1, line2, city, state, country, zipCode string) (Address, error) {
	address := Address{
		Entity:       NewEntity(),
		CustomerID:   customerID,
		AddressLine1: line1,
		AddressLine2: line2,
		City:         city,
		State:        state,
		Country:      country,
		ZipCode:      zipCode,
		IsActive:     true,
	}
	if errs := address.Validate(); len(errs) > 0 {
		return Address{}, validationError(errs)
	}
	return address, nil
}

// Validate проверяет базовые инварианты адреса.
func (a *Address) Validate() []error {
	var errs []error

	if a.CustomerID <= 0 {
		errs = append(errs, ErrAddressCustomerRequired)
	}
	if strings.TrimSpace(a.AddressLine1) == "" {
		errs = append(errs, ErrAddressLineRequired)
	}

	return errs
}
