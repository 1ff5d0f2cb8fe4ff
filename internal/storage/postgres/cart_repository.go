package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

func (r *cartRepository) Create(cart domain.ShoppingCart) (domain.ShoppingCart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO shopping_carts (correlation_id, created_by, created_on, updated_on)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, cart.CorrelationID, cart.CreatedBy, cart.CreatedOn, cart.UpdatedOn).Scan(&cart.ID)
	if err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("insert shopping cart: %w", err)
	}

	if err = insertCartItemsTx(ctx, tx, &cart); err != nil {
		return domain.ShoppingCart{}, err
	}

	if err = tx.Commit(); err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("commit create cart: %w", err)
	}

	return cart, nil
}

func (r *cartRepository) Get(id int64) (domain.ShoppingCart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.getByQuery(ctx, ` WHERE id = $1`, id)
}

func (r *cartRepository) GetByCorrelationID(correlationID string) (domain.ShoppingCart, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.getByQuery(ctx, ` WHERE correlation_id = $1`, correlationID)
}

// Save перезаписывает состав корзины целиком: строки удаляются и
// вставляются заново в одной транзакции.
func (r *cartRepository) Save(cart domain.ShoppingCart) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE shopping_carts
		SET updated_on = NOW()
		WHERE id = $1
	`, cart.ID)
	if err != nil {
		return fmt.Errorf("touch shopping cart: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		err = domain.ErrCartNotFound
		return err
	}

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM shopping_cart_items WHERE shopping_cart_id = $1
	`, cart.ID); err != nil {
		return fmt.Errorf("clear cart items: %w", err)
	}

	if err = insertCartItemsTx(ctx, tx, &cart); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save cart: %w", err)
	}

	return nil
}

func (r *cartRepository) getByQuery(ctx context.Context, where string, arg any) (domain.ShoppingCart, error) {
	var cart domain.ShoppingCart

	err := r.db.QueryRowContext(ctx, `
		SELECT id, correlation_id, created_by, created_on, updated_on
		FROM shopping_carts`+where, arg).Scan(
		&cart.ID, &cart.CorrelationID, &cart.CreatedBy, &cart.CreatedOn, &cart.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ShoppingCart{}, domain.ErrCartNotFound
		}
		return domain.ShoppingCart{}, fmt.Errorf("select shopping cart: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, shopping_cart_id, book_id, quantity, want_to_buy,
		       created_by, created_on, updated_on
		FROM shopping_cart_items
		WHERE shopping_cart_id = $1
		ORDER BY id ASC
	`, cart.ID)
	if err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("load cart items: %w", err)
	}
	defer rows.Close()

	cart.Items = make([]domain.ShoppingCartItem, 0)
	for rows.Next() {
		var item domain.ShoppingCartItem
		if err := rows.Scan(
			&item.ID, &item.ShoppingCartID, &item.BookID, &item.Quantity, &item.WantToBuy,
			&item.CreatedBy, &item.CreatedOn, &item.UpdatedOn,
		); err != nil {
			return domain.ShoppingCart{}, fmt.Errorf("scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.ShoppingCart{}, fmt.Errorf("iterate cart items: %w", err)
	}

	return cart, nil
}

func insertCartItemsTx(ctx context.Context, tx *sql.Tx, cart *domain.ShoppingCart) error {
	for i := range cart.Items {
		cart.Items[i].ShoppingCartID = cart.ID
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO shopping_cart_items (
				shopping_cart_id, book_id, quantity, want_to_buy,
				created_by, created_on, updated_on
			) VALUES ($1,$2,$3,$4,$5,$6,$7)
			RETURNING id
		`,
			cart.Items[i].ShoppingCartID, cart.Items[i].BookID,
			cart.Items[i].Quantity, cart.Items[i].WantToBuy,
			cart.Items[i].CreatedBy, cart.Items[i].CreatedOn, cart.Items[i].UpdatedOn,
		).Scan(&cart.Items[i].ID); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

var _ domain.CartRepository = (*cartRepository)(nil)
