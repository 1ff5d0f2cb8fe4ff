package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Order события
	EventTypeOrderPlaced    EventType = "order.placed"
	EventTypeOrderShipped   EventType = "order.shipped"
	EventTypeOrderDelivered EventType = "order.delivered"
	EventTypeOrderCanceled  EventType = "order.canceled"

	// Offer события
	EventTypeOfferSubmitted EventType = "offer.submitted"
	EventTypeOfferApproved  EventType = "offer.approved"
	EventTypeOfferRejected  EventType = "offer.rejected"

	// Catalog события
	EventTypeBookLowStock EventType = "book.low_stock"
)

// Topics для Kafka
const (
	TopicOrderEvents     = "bookstore.order.events"
	TopicOfferEvents     = "bookstore.offer.events"
	TopicDeadLetterQueue = "bookstore.dlq" // Dead Letter Queue для failed messages
)

// Kafka headers для retry логики
const (
	HeaderRetryCount    = "x-retry-count"
	HeaderOriginalTopic = "x-original-topic"
	HeaderErrorMessage  = "x-error-message"
	HeaderFailedAt      = "x-failed-at"
)

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType  EventType              `json:"event_type"`
	OrderID    int64                  `json:"order_id"`
	CustomerID int64                  `json:"customer_id"`
	Status     string                 `json:"status"`
	TotalMinor int64                  `json:"total_minor"`
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// OfferEvent представляет событие вокруг предложения продавца
type OfferEvent struct {
	EventType  EventType              `json:"event_type"`
	OfferID    int64                  `json:"offer_id"`
	CustomerID int64                  `json:"customer_id"`
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// LowStockEvent сигнализирует, что остаток книги упал до порога дозаказа
type LowStockEvent struct {
	EventType EventType `json:"event_type"`
	BookID    int64     `json:"book_id"`
	Remaining int32     `json:"remaining"`
	Timestamp time.Time `json:"timestamp"`
}

// NewOrderEvent создает новое событие заказа
func NewOrderEvent(eventType EventType, orderID, customerID int64, status string, totalMinor int64, metadata map[string]interface{}) *OrderEvent {
	return &OrderEvent{
		EventType:  eventType,
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     status,
		TotalMinor: totalMinor,
		Timestamp:  time.Now(),
		Metadata:   metadata,
	}
}

// NewOfferEvent создает новое событие оффера
func NewOfferEvent(eventType EventType, offerID, customerID int64, status string, metadata map[string]interface{}) *OfferEvent {
	return &OfferEvent{
		EventType:  eventType,
		OfferID:    offerID,
		CustomerID: customerID,
		Status:     status,
		Timestamp:  time.Now(),
		Metadata:   metadata,
	}
}

// NewLowStockEvent создает событие о низком остатке
func NewLowStockEvent(bookID int64, remaining int32) *LowStockEvent {
	return &LowStockEvent{
		EventType: EventTypeBookLowStock,
		BookID:    bookID,
		Remaining: remaining,
		Timestamp: time.Now(),
	}
}
