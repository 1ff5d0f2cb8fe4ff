package checkout

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
	"github.com/vladislavdragonenkov/bookstore/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/bookstore/internal/metrics"
)

// Line — запрошенная позиция заказа: книга и количество.
type Line struct {
	BookID   int64
	Quantity int32
}

// Service описывает операции оформления и сопровождения заказа.
type Service interface {
	// PlaceOrder оформляет заказ по явному списку позиций.
	PlaceOrder(customerID, addressID int64, lines []Line) (domain.Order, error)
	// PlaceOrderFromCart оформляет заказ из позиций корзины, отмеченных
	// к покупке, и убирает их из корзины при успехе.
	PlaceOrderFromCart(correlationID string, customerID, addressID int64) (domain.Order, error)
	// Transition переводит заказ в новый статус с проверкой допустимости перехода.
	Transition(orderID int64, target domain.OrderStatus, reason string) (domain.Order, error)
}

// Deps — зависимости сервиса оформления заказов.
type Deps struct {
	Customers domain.CustomerRepository
	Addresses domain.AddressRepository
	Books     domain.BookRepository
	Orders    domain.OrderRepository
	Carts     domain.CartRepository
	Placer    domain.OrderPlacer
	Outbox    domain.OutboxRepository
	Timeline  domain.TimelineRepository
	Logger    *log.Entry
}

type service struct {
	customers domain.CustomerRepository
	addresses domain.AddressRepository
	books     domain.BookRepository
	orders    domain.OrderRepository
	carts     domain.CartRepository
	placer    domain.OrderPlacer
	outbox    domain.OutboxRepository
	timeline  domain.TimelineRepository
	logger    *log.Entry
	metrics   *metrics.StoreMetrics
}

// NewService создаёт рабочий экземпляр сервиса оформления заказов.
func NewService(deps Deps) Service {
	svc := newService(deps)
	svc.metrics = metrics.NewStoreMetrics()
	return svc
}

// NewServiceWithoutMetrics создаёт сервис без метрик (для тестов).
func NewServiceWithoutMetrics(deps Deps) Service {
	return newService(deps)
}

func newService(deps Deps) *service {
	logger := deps.Logger
	if logger == nil {
		logger = log.New().WithField("component", "checkout")
	}
	return &service{
		customers: deps.Customers,
		addresses: deps.Addresses,
		books:     deps.Books,
		orders:    deps.Orders,
		carts:     deps.Carts,
		placer:    deps.Placer,
		outbox:    deps.Outbox,
		timeline:  deps.Timeline,
		logger:    logger,
	}
}

// PlaceOrder проверяет покупателя, адрес и остатки, затем атомарно сохраняет
// заказ со списанием склада. Заказ отклоняется целиком, если хотя бы одна
// позиция превышает доступный остаток.
func (s *service) PlaceOrder(customerID, addressID int64, lines []Line) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	order, err := s.placeOrder(customerID, addressID, lines)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordOrderRejected()
		}
		return domain.Order{}, err
	}
	return order, nil
}

// PlaceOrderFromCart оформляет заказ из want-to-buy позиций корзины.
// Отложенные позиции (wishlist) остаются в корзине нетронутыми.
func (s *service) PlaceOrderFromCart(correlationID string, customerID, addressID int64) (domain.Order, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordCheckoutDuration(time.Since(start))
		}
	}()

	cart, err := s.carts.GetByCorrelationID(correlationID)
	if err != nil {
		return domain.Order{}, err
	}

	purchasable := cart.PurchasableItems()
	if len(purchasable) == 0 {
		return domain.Order{}, domain.ErrCartNoPurchasableItems
	}

	lines := make([]Line, 0, len(purchasable))
	for _, item := range purchasable {
		lines = append(lines, Line{BookID: item.BookID, Quantity: item.Quantity})
	}

	order, err := s.placeOrder(customerID, addressID, lines)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordOrderRejected()
		}
		return domain.Order{}, err
	}

	// Купленные позиции уходят из корзины, wishlist остаётся.
	remaining := make([]domain.ShoppingCartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		if !item.WantToBuy {
			remaining = append(remaining, item)
		}
	}
	cart.Items = remaining
	if err := s.carts.Save(cart); err != nil {
		// Заказ уже размещён, поэтому ошибку очистки корзины только логируем.
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id":       order.ID,
			"correlation_id": correlationID,
		}).Warn("failed to clear purchased cart items")
	}

	return order, nil
}

func (s *service) placeOrder(customerID, addressID int64, lines []Line) (domain.Order, error) {
	loadStart := time.Now()

	customer, err := s.customers.Get(customerID)
	if err != nil {
		return domain.Order{}, err
	}

	address, err := s.addresses.Get(addressID)
	if err != nil {
		return domain.Order{}, err
	}
	if address.CustomerID != customer.ID {
		// Чужой адрес для вызывающего неотличим от отсутствующего.
		return domain.Order{}, domain.ErrAddressNotFound
	}

	books := make([]domain.Book, 0, len(lines))
	decrements := make([]domain.StockDecrement, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return domain.Order{}, domain.ErrOrderItemQtyInvalid
		}
		book, err := s.books.Get(line.BookID)
		if err != nil {
			return domain.Order{}, err
		}
		if book.Quantity < line.Quantity {
			s.logger.WithFields(log.Fields{
				"book_id":   book.ID,
				"requested": line.Quantity,
				"available": book.Quantity,
			}).Warn("order rejected due to insufficient stock")
			return domain.Order{}, fmt.Errorf("book %d: %w", book.ID, domain.ErrInsufficientStock)
		}
		books = append(books, book)
		decrements = append(decrements, domain.StockDecrement{BookID: book.ID, Quantity: line.Quantity})
	}

	order, err := domain.NewOrder(customer.ID, address.ID)
	if err != nil {
		return domain.Order{}, err
	}
	for i, line := range lines {
		if err := order.AddOrderItem(books[i], line.Quantity); err != nil {
			return domain.Order{}, err
		}
	}
	if s.metrics != nil {
		s.metrics.RecordStageDuration("load", time.Since(loadStart))
	}

	placeStart := time.Now()
	placed, err := s.placer.PlaceOrder(order, decrements)
	if err != nil {
		return domain.Order{}, err
	}
	if s.metrics != nil {
		s.metrics.RecordStageDuration("place", time.Since(placeStart))
		s.metrics.RecordOrderPlaced()
	}

	publishStart := time.Now()
	s.emitOrderEvent(&placed, kafka.EventTypeOrderPlaced, "")
	s.emitLowStockEvents(books, decrements)
	s.refreshLowStockGauge()
	if s.metrics != nil {
		s.metrics.RecordStageDuration("publish", time.Since(publishStart))
	}

	s.logger.WithFields(log.Fields{
		"order_id":    placed.ID,
		"customer_id": placed.CustomerID,
		"items":       len(placed.Items),
		"total_minor": placed.Total(),
	}).Info("order placed")

	return placed, nil
}

// transitionEvents задаёт событие для каждого достижимого статуса.
var transitionEvents = map[domain.OrderStatus]kafka.EventType{
	domain.OrderStatusShipped:   kafka.EventTypeOrderShipped,
	domain.OrderStatusDelivered: kafka.EventTypeOrderDelivered,
	domain.OrderStatusCanceled:  kafka.EventTypeOrderCanceled,
}

// allowedTransitions перечисляет допустимые переходы жизненного цикла.
// Статусы delivered и canceled терминальные.
var allowedTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderStatusPending: {domain.OrderStatusShipped, domain.OrderStatusCanceled},
	domain.OrderStatusShipped: {domain.OrderStatusDelivered, domain.OrderStatusCanceled},
}

// Transition переводит заказ в target. Повторный перевод в текущий статус
// не считается ошибкой. Конфликты версий разрешаются перечитыванием заказа
// с exponential backoff.
func (s *service) Transition(orderID int64, target domain.OrderStatus, reason string) (domain.Order, error) {
	if !target.Valid() {
		return domain.Order{}, domain.ErrOrderStatusInvalid
	}

	order, err := s.orders.Get(orderID)
	if err != nil {
		return domain.Order{}, err
	}

	const maxRetries = 3
	const baseDelay = 10 * time.Millisecond

	for attempt := 0; attempt < maxRetries; attempt++ {
		if order.Status == target {
			return order, nil
		}
		if !transitionAllowed(order.Status, target) {
			return domain.Order{}, fmt.Errorf("%s -> %s: %w", order.Status, target, domain.ErrOrderTransitionInvalid)
		}

		order.Status = target
		if err := s.orders.Save(order); err != nil {
			if domain.IsVersionConflict(err) && attempt < maxRetries-1 {
				s.logger.WithFields(log.Fields{
					"order_id": order.ID,
					"attempt":  attempt + 1,
					"version":  order.Version,
				}).Warn("version conflict detected, retrying")

				fresh, loadErr := s.orders.Get(order.ID)
				if loadErr != nil {
					return domain.Order{}, loadErr
				}
				order = fresh

				time.Sleep(baseDelay * time.Duration(1<<uint(attempt)))
				continue
			}
			return domain.Order{}, err
		}

		order.Version++
		s.emitOrderEvent(&order, transitionEvents[target], reason)
		s.logger.WithFields(log.Fields{
			"order_id": order.ID,
			"status":   order.Status,
		}).Info("order status changed")
		return order, nil
	}

	return domain.Order{}, domain.ErrOrderVersionConflict
}

func transitionAllowed(from, to domain.OrderStatus) bool {
	for _, status := range allowedTransitions[from] {
		if status == to {
			return true
		}
	}
	return false
}

// emitOrderEvent сохраняет событие заказа в outbox и timeline.
// Ошибки записи не прерывают основную операцию: заказ уже сохранён.
func (s *service) emitOrderEvent(order *domain.Order, eventType kafka.EventType, reason string) {
	metadata := map[string]interface{}{
		"address_id": order.AddressID,
	}
	if reason != "" {
		metadata["reason"] = reason
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.CustomerID, string(order.Status), order.Total(), metadata)
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("marshal event failed")
		return
	}

	msg := domain.OutboxMessage{
		AggregateType: "order",
		AggregateID:   strconv.FormatInt(order.ID, 10),
		EventType:     string(eventType),
		Payload:       payload,
	}
	if _, err := s.outbox.Enqueue(msg); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Error("enqueue event failed")
	} else if s.metrics != nil {
		s.metrics.RecordOutboxEvent()
	}

	if s.timeline == nil {
		return
	}
	timelineEvent := domain.TimelineEvent{
		OrderID:  order.ID,
		Type:     string(eventType),
		Reason:   reason,
		Occurred: time.Now().UTC(),
	}
	if err := s.timeline.Append(timelineEvent); err != nil {
		s.logger.WithError(err).WithFields(log.Fields{
			"order_id": order.ID,
			"event":    eventType,
		}).Warn("append timeline event failed")
	} else if s.metrics != nil {
		s.metrics.RecordTimelineEvent()
	}
}

// emitLowStockEvents публикует book.low_stock для книг, чей остаток после
// списания опустился до порога дозаказа.
func (s *service) emitLowStockEvents(books []domain.Book, decrements []domain.StockDecrement) {
	for i, book := range books {
		book.ReduceStockLevel(decrements[i].Quantity)
		if !book.IsLowInStock() {
			continue
		}

		event := kafka.NewLowStockEvent(book.ID, book.Quantity)
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.WithError(err).WithField("book_id", book.ID).Error("marshal low stock event failed")
			continue
		}

		msg := domain.OutboxMessage{
			AggregateType: "book",
			AggregateID:   strconv.FormatInt(book.ID, 10),
			EventType:     string(kafka.EventTypeBookLowStock),
			Payload:       payload,
		}
		if _, err := s.outbox.Enqueue(msg); err != nil {
			s.logger.WithError(err).WithField("book_id", book.ID).Error("enqueue low stock event failed")
		} else if s.metrics != nil {
			s.metrics.RecordOutboxEvent()
		}
	}
}

// refreshLowStockGauge пересчитывает число заканчивающихся книг каталога.
func (s *service) refreshLowStockGauge() {
	if s.metrics == nil {
		return
	}
	books, err := s.books.List(false, 0)
	if err != nil {
		s.logger.WithError(err).Warn("failed to refresh low stock gauge")
		return
	}
	var low int
	for i := range books {
		if books[i].IsLowInStock() {
			low++
		}
	}
	s.metrics.SetLowStockBooks(low)
}

var _ Service = (*service)(nil)
