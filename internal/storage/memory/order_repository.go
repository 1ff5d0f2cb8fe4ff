package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// OrderRepository — in-memory хранилище заказов. Заказы возвращаются
// копиями, чтобы вызывающий код не мутировал внутреннее состояние.
type OrderRepository struct {
	mu         sync.RWMutex
	items      map[int64]domain.Order
	nextID     int64
	nextItemID int64
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{items: make(map[int64]domain.Order)}
}

func (r *OrderRepository) Get(id int64) (domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.items[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

// ListByCustomer возвращает заказы покупателя, новые первыми.
func (r *OrderRepository) ListByCustomer(customerID int64, limit int) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Order, 0)
	for _, order := range r.items {
		if order.CustomerID == customerID {
			result = append(result, cloneOrder(order))
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedOn.Equal(result[j].CreatedOn) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedOn.After(result[j].CreatedOn)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// Save перезаписывает заказ с оптимистической блокировкой по Version.
func (r *OrderRepository) Save(order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[order.ID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	if current.Version != order.Version {
		return domain.ErrOrderVersionConflict
	}

	order.Version++
	order.Touch()
	r.items[order.ID] = cloneOrder(order)
	return nil
}

// createLocked вставляет заказ и присваивает идентификаторы ему и его
// позициям; вызывается размещателем заказов под уже взятым локом.
func (r *OrderRepository) createLocked(order domain.Order) domain.Order {
	r.nextID++
	order.ID = r.nextID
	for i := range order.Items {
		r.nextItemID++
		order.Items[i].ID = r.nextItemID
		order.Items[i].OrderID = order.ID
	}
	r.items[order.ID] = cloneOrder(order)
	return order
}

func cloneOrder(order domain.Order) domain.Order {
	clone := order
	clone.Items = make([]domain.OrderItem, len(order.Items))
	copy(clone.Items, order.Items)
	return clone
}

var _ domain.OrderRepository = (*OrderRepository)(nil)
