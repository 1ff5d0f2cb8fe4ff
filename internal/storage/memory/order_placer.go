package memory

import (
	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

// OrderPlacer атомарно размещает заказ и списывает остатки. Порядок
// взятия локов фиксирован (каталог, затем заказы), дедлоки исключены.
type OrderPlacer struct {
	books  *BookRepository
	orders *OrderRepository
}

func NewOrderPlacer(books *BookRepository, orders *OrderRepository) *OrderPlacer {
	return &OrderPlacer{books: books, orders: orders}
}

// PlaceOrder проверяет остатки по всем позициям до какой-либо мутации:
// при нехватке хотя бы одной позиции ни заказ, ни остатки не меняются.
func (p *OrderPlacer) PlaceOrder(order domain.Order, decrements []domain.StockDecrement) (domain.Order, error) {
	p.books.mu.Lock()
	defer p.books.mu.Unlock()
	p.orders.mu.Lock()
	defer p.orders.mu.Unlock()

	for _, dec := range decrements {
		book, ok := p.books.getLocked(dec.BookID)
		if !ok {
			return domain.Order{}, domain.ErrBookNotFound
		}
		if book.Quantity < dec.Quantity {
			return domain.Order{}, domain.ErrInsufficientStock
		}
	}

	for _, dec := range decrements {
		book, _ := p.books.getLocked(dec.BookID)
		book.ReduceStockLevel(dec.Quantity)
		if err := p.books.saveLocked(book); err != nil {
			return domain.Order{}, err
		}
	}

	return p.orders.createLocked(order), nil
}

var _ domain.OrderPlacer = (*OrderPlacer)(nil)
