package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type orderPlacer struct {
	db *sql.DB
}

// NewOrderPlacer создаёт PostgreSQL-реализацию OrderPlacer: заказ, его
// позиции и списание остатков выполняются в одной транзакции.
func NewOrderPlacer(store *Store) domain.OrderPlacer {
	return &orderPlacer{db: store.DB()}
}

func (p *orderPlacer) PlaceOrder(order domain.Order, decrements []domain.StockDecrement) (domain.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Order{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Остатки проверяются под row lock до каких-либо вставок; нехватка
	// по любой позиции откатывает всю транзакцию.
	for _, dec := range decrements {
		var quantity int32
		err = tx.QueryRowContext(ctx, `
			SELECT quantity FROM books WHERE id = $1 FOR UPDATE
		`, dec.BookID).Scan(&quantity)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				err = domain.ErrBookNotFound
				return domain.Order{}, err
			}
			return domain.Order{}, fmt.Errorf("lock book %d: %w", dec.BookID, err)
		}
		if quantity < dec.Quantity {
			err = domain.ErrInsufficientStock
			return domain.Order{}, err
		}

		if _, err = tx.ExecContext(ctx, `
			UPDATE books
			SET quantity = GREATEST(quantity - $2, 0),
			    updated_on = NOW()
			WHERE id = $1
		`, dec.BookID, dec.Quantity); err != nil {
			return domain.Order{}, fmt.Errorf("decrement stock for book %d: %w", dec.BookID, err)
		}
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (
			customer_id, address_id, delivery_date, status, pricing, version,
			created_by, created_on, updated_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id
	`,
		order.CustomerID, order.AddressID, order.DeliveryDate,
		string(order.Status), string(order.Pricing), order.Version,
		order.CreatedBy, order.CreatedOn, order.UpdatedOn,
	).Scan(&order.ID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("insert order: %w", err)
	}

	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (
				order_id, book_id, quantity, unit_price_minor,
				created_by, created_on, updated_on
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`,
			order.Items[i].OrderID, order.Items[i].BookID,
			order.Items[i].Quantity, order.Items[i].UnitPriceMinor,
			order.Items[i].CreatedBy, order.Items[i].CreatedOn, order.Items[i].UpdatedOn,
		).Scan(&order.Items[i].ID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("insert order item: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Order{}, fmt.Errorf("commit place order: %w", err)
	}

	return order, nil
}

var _ domain.OrderPlacer = (*orderPlacer)(nil)
