package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

func makeOrder(t *testing.T) domain.Order {
	t.Helper()
	order, err := domain.NewOrder(1, 2)
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	return order
}

func TestNewOrderDefaults(t *testing.T) {
	before := time.Now().UTC()
	order := makeOrder(t)

	if order.Status != domain.OrderStatusPending {
		t.Fatalf("status = %q, want %q", order.Status, domain.OrderStatusPending)
	}
	if len(order.Items) != 0 {
		t.Fatalf("new order must start without items, got %d", len(order.Items))
	}
	if order.SubTotal() != 0 || order.Tax() != 0 || order.Total() != 0 {
		t.Fatalf("empty order totals must be zero: %d/%d/%d",
			order.SubTotal(), order.Tax(), order.Total())
	}

	wantDelivery := before.Add(domain.DefaultDeliveryLead)
	if diff := order.DeliveryDate.Sub(wantDelivery); diff < -time.Minute || diff > time.Minute {
		t.Fatalf("delivery date %v not around now+7d", order.DeliveryDate)
	}
}

func TestNewOrderValidation(t *testing.T) {
	if _, err := domain.NewOrder(0, 2); !errors.Is(err, domain.ErrOrderCustomerRequired) {
		t.Fatalf("expected ErrOrderCustomerRequired, got %v", err)
	}
	if _, err := domain.NewOrder(1, 0); !errors.Is(err, domain.ErrOrderAddressRequired) {
		t.Fatalf("expected ErrOrderAddressRequired, got %v", err)
	}
}

func TestAddOrderItem(t *testing.T) {
	order := makeOrder(t)
	book := makeBook(t, 2000, 3)
	book.ID = 77

	if err := order.AddOrderItem(book, 2); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}

	if len(order.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(order.Items))
	}
	item := order.Items[0]
	if item.BookID != 77 || item.Quantity != 2 || item.UnitPriceMinor != 2000 {
		t.Fatalf("unexpected item: %+v", item)
	}

	if err := order.AddOrderItem(book, 0); !errors.Is(err, domain.ErrOrderItemQtyInvalid) {
		t.Fatalf("expected ErrOrderItemQtyInvalid, got %v", err)
	}
}

// Историческое поведение: subtotal складывает цены строк без учёта количества.
func TestOrderTotalsPerItem(t *testing.T) {
	order := makeOrder(t)
	book := makeBook(t, 2000, 3)

	if err := order.AddOrderItem(book, 2); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}

	if got := order.SubTotal(); got != 2000 {
		t.Fatalf("SubTotal = %d, want 2000 (price counted once despite qty=2)", got)
	}
	if got := order.Tax(); got != 200 {
		t.Fatalf("Tax = %d, want 200", got)
	}
	if got := order.Total(); got != 2200 {
		t.Fatalf("Total = %d, want 2200", got)
	}
}

func TestOrderTotalsPerUnit(t *testing.T) {
	order := makeOrder(t)
	order.Pricing = domain.PricingPerUnit

	first := makeBook(t, 2000, 3)
	second := makeBook(t, 499, 10)
	if err := order.AddOrderItem(first, 2); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}
	if err := order.AddOrderItem(second, 3); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}

	wantSub := int64(2000*2 + 499*3)
	if got := order.SubTotal(); got != wantSub {
		t.Fatalf("SubTotal = %d, want %d", got, wantSub)
	}
	if got := order.Total(); got != wantSub+order.Tax() {
		t.Fatalf("Total = %d, want SubTotal+Tax", got)
	}
}

// Цена позиции фиксируется при добавлении: последующее изменение цены книги
// на итоги заказа не влияет.
func TestOrderItemPriceSnapshot(t *testing.T) {
	order := makeOrder(t)
	book := makeBook(t, 1000, 5)

	if err := order.AddOrderItem(book, 1); err != nil {
		t.Fatalf("AddOrderItem: %v", err)
	}

	book.PriceMinor = 9999
	if got := order.SubTotal(); got != 1000 {
		t.Fatalf("SubTotal = %d, want 1000 after book price change", got)
	}
}

func TestOrderTaxRounding(t *testing.T) {
	cases := []struct {
		price int64
		tax   int64
	}{
		{price: 2000, tax: 200},
		{price: 1, tax: 0},   // 0.1 цента -> 0
		{price: 5, tax: 1},   // 0.5 цента -> half-up
		{price: 999, tax: 100},
		{price: 994, tax: 99},
	}

	for _, tc := range cases {
		order := makeOrder(t)
		book := makeBook(t, tc.price, 1)
		if err := order.AddOrderItem(book, 1); err != nil {
			t.Fatalf("AddOrderItem: %v", err)
		}
		if got := order.Tax(); got != tc.tax {
			t.Errorf("price=%d: Tax = %d, want %d", tc.price, got, tc.tax)
		}
	}
}

func TestOrderValidateInvariants(t *testing.T) {
	cases := []struct {
		name string
		mut  func(o *domain.Order)
	}{
		{
			name: "no customer",
			mut:  func(o *domain.Order) { o.CustomerID = 0 },
		},
		{
			name: "no address",
			mut:  func(o *domain.Order) { o.AddressID = 0 },
		},
		{
			name: "unknown status",
			mut:  func(o *domain.Order) { o.Status = "unknown" },
		},
		{
			name: "qty invalid",
			mut: func(o *domain.Order) {
				o.Items = []domain.OrderItem{{BookID: 1, Quantity: 0, UnitPriceMinor: 100}}
			},
		},
		{
			name: "price invalid",
			mut: func(o *domain.Order) {
				o.Items = []domain.OrderItem{{BookID: 1, Quantity: 1, UnitPriceMinor: -5}}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder(t)
			tc.mut(&order)
			if len(order.ValidateInvariants()) == 0 {
				t.Fatalf("expected validation errors for case %s", tc.name)
			}
		})
	}

	order := makeOrder(t)
	if errs := order.ValidateInvariants(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestOrderStatusValid(t *testing.T) {
	valid := []domain.OrderStatus{
		domain.OrderStatusPending,
		domain.OrderStatusShipped,
		domain.OrderStatusDelivered,
		domain.OrderStatusCanceled,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("status %q must be valid", s)
		}
	}
	if domain.OrderStatus("paid").Valid() {
		t.Error("unknown status must be invalid")
	}
}
