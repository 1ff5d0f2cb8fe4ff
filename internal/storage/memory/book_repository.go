package memory

import (
	"sort"
	"sync"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// BookRepository — in-memory реализация хранилища каталога для локальной
// разработки и тестов.
type BookRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Book
	nextID int64
}

// NewBookRepository возвращает пустой in-memory каталог.
func NewBookRepository() *BookRepository {
	return &BookRepository{items: make(map[int64]domain.Book)}
}

// Create сохраняет книгу, присваивая ей следующий идентификатор.
func (r *BookRepository) Create(book domain.Book) (domain.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createLocked(book), nil
}

// Get возвращает книгу или ErrBookNotFound.
func (r *BookRepository) Get(id int64) (domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.items[id]
	if !ok {
		return domain.Book{}, domain.ErrBookNotFound
	}
	return book, nil
}

// List возвращает книги каталога, отсортированные по идентификатору.
func (r *BookRepository) List(onlyInStock bool, limit int) ([]domain.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Book, 0, len(r.items))
	for _, book := range r.items {
		if onlyInStock && !book.IsInStock() {
			continue
		}
		result = append(result, book)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// Save перезаписывает существующую книгу.
func (r *BookRepository) Save(book domain.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.saveLocked(book)
}

// createLocked выполняет вставку под уже взятым локом; используется
// также при атомарном размещении заказа.
func (r *BookRepository) createLocked(book domain.Book) domain.Book {
	r.nextID++
	book.ID = r.nextID
	r.items[book.ID] = book
	return book
}

func (r *BookRepository) saveLocked(book domain.Book) error {
	if _, ok := r.items[book.ID]; !ok {
		return domain.ErrBookNotFound
	}
	book.Touch()
	r.items[book.ID] = book
	return nil
}

func (r *BookRepository) getLocked(id int64) (domain.Book, bool) {
	book, ok := r.items[id]
	return book, ok
}

var _ domain.BookRepository = (*BookRepository)(nil)
