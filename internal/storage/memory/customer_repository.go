package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// CustomerRepository — in-memory хранилище покупателей. Уникальность sub
// проверяется отдельным индексом, как unique-констрейнт в Postgres.
type CustomerRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Customer
	bySub  map[string]int64
	nextID int64
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		items: make(map[int64]domain.Customer),
		bySub: make(map[string]int64),
	}
}

// Create сохраняет покупателя; повторный sub отклоняется.
func (r *CustomerRepository) Create(customer domain.Customer) (domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.bySub[customer.Sub]; exists {
		return domain.Customer{}, domain.ErrCustomerSubTaken
	}

	r.nextID++
	customer.ID = r.nextID
	r.items[customer.ID] = customer
	r.bySub[customer.Sub] = customer.ID
	return customer, nil
}

func (r *CustomerRepository) Get(id int64) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, ok := r.items[id]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return customer, nil
}

func (r *CustomerRepository) GetBySub(sub string) (domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySub[sub]
	if !ok {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}
	return r.items[id], nil
}

var _ domain.CustomerRepository = (*CustomerRepository)(nil)
