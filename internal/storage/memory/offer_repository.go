package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// OfferRepository — in-memory хранилище предложений о продаже книг.
type OfferRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Offer
	nextID int64
}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{items: make(map[int64]domain.Offer)}
}

func (r *OfferRepository) Create(offer domain.Offer) (domain.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	offer.ID = r.nextID
	r.items[offer.ID] = offer
	return offer, nil
}

func (r *OfferRepository) Get(id int64) (domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.items[id]
	if !ok {
		return domain.Offer{}, domain.ErrOfferNotFound
	}
	return offer, nil
}

// List фильтрует по покупателю и статусу; нулевой customerID и пустой
// статус означают «без фильтра». Новые предложения идут первыми.
func (r *OfferRepository) List(customerID int64, status domain.OfferStatus, limit int) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Offer, 0)
	for _, offer := range r.items {
		if customerID != 0 && offer.CustomerID != customerID {
			continue
		}
		if status != "" && offer.Status != status {
			continue
		}
		result = append(result, offer)
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

func (r *OfferRepository) Save(offer domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[offer.ID]; !ok {
		return domain.ErrOfferNotFound
	}
	offer.Touch()
	r.items[offer.ID] = offer
	return nil
}

var _ domain.OfferRepository = (*OfferRepository)(nil)
