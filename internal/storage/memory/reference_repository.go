package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// ReferenceDataRepository — in-memory справочник (жанры, состояния,
// издатели, типы книг).
type ReferenceDataRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.ReferenceDataItem
	nextID int64
}

func NewReferenceDataRepository() *ReferenceDataRepository {
	return &ReferenceDataRepository{items: make(map[int64]domain.ReferenceDataItem)}
}

func (r *ReferenceDataRepository) Create(item domain.ReferenceDataItem) (domain.ReferenceDataItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *ReferenceDataRepository) Get(id int64) (domain.ReferenceDataItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return domain.ReferenceDataItem{}, domain.ErrReferenceDataNotFound
	}
	return item, nil
}

func (r *ReferenceDataRepository) ListByType(dataType domain.ReferenceDataType) ([]domain.ReferenceDataItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.ReferenceDataItem, 0)
	for _, item := range r.items {
		if item.DataType == dataType {
			result = append(result, item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}

var _ domain.ReferenceDataRepository = (*ReferenceDataRepository)(nil)
