package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

func TestNewCustomer(t *testing.T) {
	customer, err := domain.NewCustomer("auth0|abc", "reader42")
	if err != nil {
		t.Fatalf("NewCustomer: %v", err)
	}
	if customer.Sub != "auth0|abc" || customer.Username != "reader42" {
		t.Fatalf("unexpected customer: %+v", customer)
	}

	if _, err := domain.NewCustomer("", "x"); !errors.Is(err, domain.ErrCustomerSubRequired) {
		t.Fatalf("expected ErrCustomerSubRequired, got %v", err)
	}

	// Переданные значения сохраняются без нормализации.
	padded, err := domain.NewCustomer(" auth0|abc ", " reader42 ")
	if err != nil {
		t.Fatalf("NewCustomer with padded fields: %v", err)
	}
	if padded.Sub != " auth0|abc " || padded.Username != " reader42 " {
		t.Fatalf("padded fields must round-trip unmodified: %+v", padded)
	}
}

func TestCustomerFullName(t *testing.T) {
	cases := []struct {
		first, last, username string
		want                  string
	}{
		{first: "Jane", last: "Doe", username: "jd", want: "Jane Doe"},
		{first: "Jane", last: "", username: "jd", want: "Jane"},
		{first: "", last: "", username: "jd", want: "jd"},
	}

	for _, tc := range cases {
		customer, err := domain.NewCustomer("sub-1", tc.username)
		if err != nil {
			t.Fatalf("NewCustomer: %v", err)
		}
		customer.FirstName = tc.first
		customer.LastName = tc.last
		if got := customer.FullName(); got != tc.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tc.first, tc.last, got, tc.want)
		}
	}
}

func TestNewAddress(t *testing.T) {
	address, err := domain.NewAddress(3, "1 Main St", "", "Springfield", "IL", "USA", "62704")
	if err != nil {
		t.Fatalf("NewAddress: %v", err)
	}
	if !address.IsActive {
		t.Fatal("new address must be active")
	}
	if address.CustomerID != 3 || address.City != "Springfield" {
		t.Fatalf("unexpected address: %+v", address)
	}

	// Переданные значения сохраняются без нормализации.
	padded, err := domain.NewAddress(3, " 1 Main St ", " Apt 2 ", " Springfield ", " IL ", " USA ", " 62704 ")
	if err != nil {
		t.Fatalf("NewAddress with padded fields: %v", err)
	}
	if padded.AddressLine1 != " 1 Main St " || padded.AddressLine2 != " Apt 2 " || padded.City != " Springfield " ||
		padded.State != " IL " || padded.Country != " USA " || padded.ZipCode != " 62704 " {
		t.Fatalf("padded fields must round-trip unmodified: %+v", padded)
	}

	if _, err := domain.NewAddress(0, "1 Main St", "", "", "", "", ""); !errors.Is(err, domain.ErrAddressCustomerRequired) {
		t.Fatalf("expected ErrAddressCustomerRequired, got %v", err)
	}
	if _, err := domain.NewAddress(3, " ", "", "", "", "", ""); !errors.Is(err, domain.ErrAddressLineRequired) {
		t.Fatalf("expected ErrAddressLineRequired, got %v", err)
	}
}
