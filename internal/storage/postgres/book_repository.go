package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type bookRepository struct {
	db *sql.DB
}

// NewBookRepository создаёт PostgreSQL-реализацию BookRepository.
func NewBookRepository(store *Store) domain.BookRepository {
	return &bookRepository{db: store.DB()}
}

func (r *bookRepository) Create(book domain.Book) (domain.Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO books (
			name, author, isbn, year,
			publisher_id, book_type_id, genre_id, condition_id,
			price_minor, quantity, summary, cover_image_url,
			created_by, created_on, updated_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id
	`,
		book.Name, book.Author, book.ISBN, book.Year,
		int64(book.PublisherID), int64(book.BookTypeID), int64(book.GenreID), int64(book.ConditionID),
		book.PriceMinor, book.Quantity, book.Summary, book.CoverImageURL,
		book.CreatedBy, book.CreatedOn, book.UpdatedOn,
	).Scan(&book.ID)
	if err != nil {
		return domain.Book{}, fmt.Errorf("insert book: %w", err)
	}

	return book, nil
}

func (r *bookRepository) Get(id int64) (domain.Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	book, err := scanBookRow(r.db.QueryRowContext(ctx, selectBookQuery+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Book{}, domain.ErrBookNotFound
		}
		return domain.Book{}, fmt.Errorf("select book: %w", err)
	}

	return book, nil
}

func (r *bookRepository) List(onlyInStock bool, limit int) ([]domain.Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	query := selectBookQuery
	if onlyInStock {
		query += ` WHERE quantity > 0`
	}
	query += ` ORDER BY id ASC`

	var (
		rows *sql.Rows
		err  error
	)

	if limit > 0 {
		rows, err = r.db.QueryContext(ctx, query+` LIMIT $1`, limit)
	} else {
		rows, err = r.db.QueryContext(ctx, query)
	}
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		book, err := scanBookRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate book rows: %w", err)
	}

	return books, nil
}

func (r *bookRepository) Save(book domain.Book) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE books
		SET name = $1,
		    author = $2,
		    isbn = $3,
		    year = $4,
		    publisher_id = $5,
		    book_type_id = $6,
		    genre_id = $7,
		    condition_id = $8,
		    price_minor = $9,
		    quantity = $10,
		    summary = $11,
		    cover_image_url = $12,
		    updated_on = NOW()
		WHERE id = $13
	`,
		book.Name, book.Author, book.ISBN, book.Year,
		int64(book.PublisherID), int64(book.BookTypeID), int64(book.GenreID), int64(book.ConditionID),
		book.PriceMinor, book.Quantity, book.Summary, book.CoverImageURL,
		book.ID,
	)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookNotFound
	}

	return nil
}

const selectBookQuery = `
	SELECT id, name, author, isbn, year,
	       publisher_id, book_type_id, genre_id, condition_id,
	       price_minor, quantity, summary, cover_image_url,
	       created_by, created_on, updated_on
	FROM books`

func scanBookRow(row rowScanner) (domain.Book, error) {
	var (
		book        domain.Book
		publisherID int64
		bookTypeID  int64
		genreID     int64
		conditionID int64
	)
	if err := row.Scan(
		&book.ID, &book.Name, &book.Author, &book.ISBN, &book.Year,
		&publisherID, &bookTypeID, &genreID, &conditionID,
		&book.PriceMinor, &book.Quantity, &book.Summary, &book.CoverImageURL,
		&book.CreatedBy, &book.CreatedOn, &book.UpdatedOn,
	); err != nil {
		return domain.Book{}, err
	}
	book.PublisherID = domain.PublisherID(publisherID)
	book.BookTypeID = domain.BookTypeID(bookTypeID)
	book.GenreID = domain.GenreID(genreID)
	book.ConditionID = domain.ConditionID(conditionID)
	return book, nil
}

var _ domain.BookRepository = (*bookRepository)(nil)
