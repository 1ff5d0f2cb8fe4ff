package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// AddressRepository — in-memory хранилище адресов доставки.
type AddressRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Address
	nextID int64
}

func NewAddressRepository() *AddressRepository {
	return &AddressRepository{items: make(map[int64]domain.Address)}
}

func (r *AddressRepository) Create(address domain.Address) (domain.Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	address.ID = r.nextID
	r.items[address.ID] = address
	return address, nil
}

func (r *AddressRepository) Get(id int64) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	address, ok := r.items[id]
	if !ok {
		return domain.Address{}, domain.ErrAddressNotFound
	}
	return address, nil
}

// ListByCustomer возвращает адреса покупателя, отсортированные по идентификатору.
func (r *AddressRepository) ListByCustomer(customerID int64) ([]domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Address, 0)
	for _, address := range r.items {
		if address.CustomerID == customerID {
			result = append(result, address)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

var _ domain.AddressRepository = (*AddressRepository)(nil)
