package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type offerRepository struct {
	db *sql.DB
}

// NewOfferRepository создаёт PostgreSQL-реализацию OfferRepository.
func NewOfferRepository(store *Store) domain.OfferRepository {
	return &offerRepository{db: store.DB()}
}

func (r *offerRepository) Create(offer domain.Offer) (domain.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO offers (
			customer_id, book_name, author, isbn,
			genre_id, condition_id, publisher_id, book_type_id,
			price_minor, summary, front_image_url, status, comment,
			created_by, created_on, updated_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id
	`,
		offer.CustomerID, offer.BookName, offer.Author, offer.ISBN,
		int64(offer.GenreID), int64(offer.ConditionID), int64(offer.PublisherID), int64(offer.BookTypeID),
		offer.PriceMinor, offer.Summary, offer.FrontImageURL, string(offer.Status), offer.Comment,
		offer.CreatedBy, offer.CreatedOn, offer.UpdatedOn,
	).Scan(&offer.ID)
	if err != nil {
		return domain.Offer{}, fmt.Errorf("insert offer: %w", err)
	}

	return offer, nil
}

func (r *offerRepository) Get(id int64) (domain.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	offer, err := scanOfferRow(r.db.QueryRowContext(ctx, selectOfferQuery+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Offer{}, domain.ErrOfferNotFound
		}
		return domain.Offer{}, fmt.Errorf("select offer: %w", err)
	}

	return offer, nil
}

// List фильтрует предложения по покупателю и статусу; нулевые значения
// фильтров пропускают все строки. Новые предложения идут первыми.
func (r *offerRepository) List(customerID int64, status domain.OfferStatus, limit int) ([]domain.Offer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := selectOfferQuery + `
		WHERE ($1 = 0 OR customer_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_on DESC, id DESC
	`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $3`, customerID, string(status), limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query, customerID, string(status))
	}
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.Offer, 0)
	for rows.Next() {
		offer, err := scanOfferRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}

	return offers, nil
}

func (r *offerRepository) Save(offer domain.Offer) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE offers
		SET status = $1,
		    comment = $2,
		    updated_on = NOW()
		WHERE id = $3
	`, string(offer.Status), offer.Comment, offer.ID)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrOfferNotFound
	}

	return nil
}

const selectOfferQuery = `
	SELECT id, customer_id, book_name, author, isbn,
	       genre_id, condition_id, publisher_id, book_type_id,
	       price_minor, summary, front_image_url, status, comment,
	       created_by, created_on, updated_on
	FROM offers`

func scanOfferRow(row rowScanner) (domain.Offer, error) {
	var (
		offer       domain.Offer
		genreID     int64
		conditionID int64
		publisherID int64
		bookTypeID  int64
		status      string
	)
	if err := row.Scan(
		&offer.ID, &offer.CustomerID, &offer.BookName, &offer.Author, &offer.ISBN,
		&genreID, &conditionID, &publisherID, &bookTypeID,
		&offer.PriceMinor, &offer.Summary, &offer.FrontImageURL, &status, &offer.Comment,
		&offer.CreatedBy, &offer.CreatedOn, &offer.UpdatedOn,
	); err != nil {
		return domain.Offer{}, err
	}
	offer.GenreID = domain.GenreID(genreID)
	offer.ConditionID = domain.ConditionID(conditionID)
	offer.PublisherID = domain.PublisherID(publisherID)
	offer.BookTypeID = domain.BookTypeID(bookTypeID)
	offer.Status = domain.OfferStatus(status)
	return offer, nil
}

var _ domain.OfferRepository = (*offerRepository)(nil)
