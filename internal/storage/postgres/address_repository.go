package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type addressRepository struct {
	db *sql.DB
}

// NewAddressRepository создаёт PostgreSQL-реализацию AddressRepository.
func NewAddressRepository(store *Store) domain.AddressRepository {
	return &addressRepository{db: store.DB()}
}

func (r *addressRepository) Create(address domain.Address) (domain.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO addresses (
			customer_id, address_line1, address_line2, city, state, country, zip_code,
			is_active, created_by, created_on, updated_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		RETURNING id
	`,
		address.CustomerID, address.AddressLine1, address.AddressLine2,
		address.City, address.State, address.Country, address.ZipCode,
		address.IsActive, address.CreatedBy, address.CreatedOn, address.UpdatedOn,
	).Scan(&address.ID)
	if err != nil {
		return domain.Address{}, fmt.Errorf("insert address: %w", err)
	}

	return address, nil
}

func (r *addressRepository) Get(id int64) (domain.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	address, err := scanAddressRow(r.db.QueryRowContext(ctx, selectAddressQuery+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Address{}, domain.ErrAddressNotFound
		}
		return domain.Address{}, fmt.Errorf("select address: %w", err)
	}

	return address, nil
}

func (r *addressRepository) ListByCustomer(customerID int64) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, selectAddressQuery+`
		WHERE customer_id = $1
		ORDER BY id ASC
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		address, err := scanAddressRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate address rows: %w", err)
	}

	return addresses, nil
}

const selectAddressQuery = `
	SELECT id, customer_id, address_line1, address_line2, city, state, country, zip_code,
	       is_active, created_by, created_on, updated_on
	FROM addresses`

func scanAddressRow(row rowScanner) (domain.Address, error) {
	var address domain.Address
	if err := row.Scan(
		&address.ID, &address.CustomerID,
		&address.AddressLine1, &address.AddressLine2,
		&address.City, &address.State, &address.Country, &address.ZipCode,
		&address.IsActive, &address.CreatedBy, &address.CreatedOn, &address.UpdatedOn,
	); err != nil {
		return domain.Address{}, err
	}
	return address, nil
}

var _ domain.AddressRepository = (*addressRepository)(nil)
