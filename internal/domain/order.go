package domain

import "time"

// OrderStatus описывает жизненный цикл заказа в магазине.
type OrderStatus string

const (
	// OrderStatusPending — заказ создан и ожидает обработки. Единственный
	// начальный статус.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusShipped — заказ передан в доставку.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered — заказ доставлен покупателю.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCanceled — заказ отменён до завершения цикла.
	OrderStatusCanceled OrderStatus = "canceled"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// PricingPolicy задаёт способ вычисления SubTotal заказа.
type PricingPolicy string

const (
	// PricingPerItem — историческое поведение: каждая позиция вносит цену
	// единицы ровно один раз, независимо от количества.
	PricingPerItem PricingPolicy = "per_item"
	// PricingPerUnit — цена единицы умножается на количество.
	PricingPerUnit PricingPolicy = "per_unit"
)

const (
	// taxRateBasisPoints — фиксированная ставка налога 10% в базисных пунктах.
	taxRateBasisPoints = 1000
	// DefaultDeliveryLead — срок доставки по умолчанию от момента создания заказа.
	DefaultDeliveryLead = 7 * 24 * time.Hour
)

// OrderItem — неизменяемая позиция заказа. Цена единицы снимается с книги
// в момент добавления; последующие изменения цены книги на позицию не влияют.
type OrderItem struct {
	Entity

	OrderID  int64
	BookID   int64
	Quantity int32
	// UnitPriceMinor — цена единицы на момент добавления, в центах.
	UnitPriceMinor int64
}

// Order агрегирует заказ и его позиции. Финансовые итоги всегда
// вычисляются из позиций на чтении и отдельно не хранятся.
type Order struct {
	Entity

	CustomerID   int64
	AddressID    int64
	DeliveryDate time.Time
	Status       OrderStatus
	Pricing      PricingPolicy
	Items        []OrderItem
	// Version используется слоем хранения для optimistic locking.
	Version int64
}

// NewOrder создаёт заказ без позиций: статус Pending, доставка через 7 дней.
func NewOrder(customerID, addressID int64) (Order, error) {
	order := Order{
		Entity:       NewEntity(),
		CustomerID:   customerID,
		AddressID:    addressID,
		DeliveryDate: time.Now().UTC().Add(DefaultDeliveryLead),
		Status:       OrderStatusPending,
		Pricing:      PricingPerItem,
	}
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return Order{}, validationError(errs)
	}
	return order, nil
}

// AddOrderItem добавляет позицию, связывая заказ с книгой и фиксируя цену
// единицы на момент добавления. Соответствие количества складскому остатку
// агрегат не проверяет: это зона ответственности checkout-оркестратора.
func (o *Order) AddOrderItem(book Book, quantity int32) error {
	if quantity <= 0 {
		return ErrOrderItemQtyInvalid
	}

	o.Items = append(o.Items, OrderItem{
		Entity:         NewEntity(),
		OrderID:        o.ID,
		BookID:         book.ID,
		Quantity:       quantity,
		UnitPriceMinor: book.PriceMinor,
	})
	return nil
}

// SubTotal вычисляет сумму позиций согласно PricingPolicy заказа.
// При PricingPerItem количество игнорируется — цена строки учитывается один раз.
func (o *Order) SubTotal() int64 {
	var sum int64
	for _, item := range o.Items {
		if o.Pricing == PricingPerUnit {
			sum += item.UnitPriceMinor * int64(item.Quantity)
			continue
		}
		sum += item.UnitPriceMinor
	}
	return sum
}

// Tax — налог 10% от SubTotal, округление half-up в центах.
func (o *Order) Tax() int64 {
	return (o.SubTotal()*taxRateBasisPoints + 5000) / 10000
}

// Total — итог заказа: SubTotal + Tax.
func (o *Order) Total() int64 {
	return o.SubTotal() + o.Tax()
}

// ValidateInvariants проверяет базовые инварианты заказа и возвращает список замечаний.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.CustomerID <= 0 {
		errs = append(errs, ErrOrderCustomerRequired)
	}
	if o.AddressID <= 0 {
		errs = append(errs, ErrOrderAddressRequired)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrOrderStatusInvalid)
	}
	for _, item := range o.Items {
		if item.Quantity <= 0 {
			errs = append(errs, ErrOrderItemQtyInvalid)
		}
		if item.UnitPriceMinor < 0 {
			errs = append(errs, ErrPriceNegative)
		}
	}

	return errs
}
