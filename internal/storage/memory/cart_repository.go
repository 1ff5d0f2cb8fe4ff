package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// CartRepository — in-memory хранилище корзин. Корзина ищется либо по
// идентификатору, либо по correlation id анонимной сессии.
type CartRepository struct {
	mu            sync.RWMutex
	items         map[int64]domain.ShoppingCart
	byCorrelation map[string]int64
	nextID        int64
	nextItemID    int64
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		items:         make(map[int64]domain.ShoppingCart),
		byCorrelation: make(map[string]int64),
	}
}

func (r *CartRepository) Create(cart domain.ShoppingCart) (domain.ShoppingCart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	cart.ID = r.nextID
	r.assignItemIDs(&cart)
	r.items[cart.ID] = cloneCart(cart)
	r.byCorrelation[cart.CorrelationID] = cart.ID
	return cart, nil
}

func (r *CartRepository) Get(id int64) (domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.items[id]
	if !ok {
		return domain.ShoppingCart{}, domain.ErrCartNotFound
	}
	return cloneCart(cart), nil
}

func (r *CartRepository) GetByCorrelationID(correlationID string) (domain.ShoppingCart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCorrelation[correlationID]
	if !ok {
		return domain.ShoppingCart{}, domain.ErrCartNotFound
	}
	return cloneCart(r.items[id]), nil
}

func (r *CartRepository) Save(cart domain.ShoppingCart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[cart.ID]; !ok {
		return domain.ErrCartNotFound
	}
	r.assignItemIDs(&cart)
	cart.Touch()
	r.items[cart.ID] = cloneCart(cart)
	return nil
}

// assignItemIDs выдаёт идентификаторы новым строкам корзины.
func (r *CartRepository) assignItemIDs(cart *domain.ShoppingCart) {
	for i := range cart.Items {
		if cart.Items[i].ID == 0 {
			r.nextItemID++
			cart.Items[i].ID = r.nextItemID
		}
		cart.Items[i].ShoppingCartID = cart.ID
	}
}

func cloneCart(cart domain.ShoppingCart) domain.ShoppingCart {
	clone := cart
	clone.Items = make([]domain.ShoppingCartItem, len(cart.Items))
	copy(clone.Items, cart.Items)
	return clone
}

var _ domain.CartRepository = (*CartRepository)(nil)
