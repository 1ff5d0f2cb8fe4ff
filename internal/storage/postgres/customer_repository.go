package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository создаёт PostgreSQL-реализацию CustomerRepository.
func NewCustomerRepository(store *Store) domain.CustomerRepository {
	return &customerRepository{db: store.DB()}
}

func (r *customerRepository) Create(customer domain.Customer) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var dateOfBirth any
	if !customer.DateOfBirth.IsZero() {
		dateOfBirth = customer.DateOfBirth
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (
			sub, username, first_name, last_name, email, phone, date_of_birth,
			created_by, created_on, updated_on
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id
	`,
		customer.Sub, customer.Username, customer.FirstName, customer.LastName,
		customer.Email, customer.Phone, dateOfBirth,
		customer.CreatedBy, customer.CreatedOn, customer.UpdatedOn,
	).Scan(&customer.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Customer{}, domain.ErrCustomerSubTaken
		}
		return domain.Customer{}, fmt.Errorf("insert customer: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) Get(id int64) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.getByQuery(ctx, selectCustomerQuery+` WHERE id = $1`, id)
}

func (r *customerRepository) GetBySub(sub string) (domain.Customer, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return r.getByQuery(ctx, selectCustomerQuery+` WHERE sub = $1`, sub)
}

func (r *customerRepository) getByQuery(ctx context.Context, query string, arg any) (domain.Customer, error) {
	var (
		customer    domain.Customer
		dateOfBirth sql.NullTime
	)

	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&customer.ID, &customer.Sub, &customer.Username,
		&customer.FirstName, &customer.LastName, &customer.Email, &customer.Phone,
		&dateOfBirth,
		&customer.CreatedBy, &customer.CreatedOn, &customer.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrCustomerNotFound
		}
		return domain.Customer{}, fmt.Errorf("select customer: %w", err)
	}

	if dateOfBirth.Valid {
		customer.DateOfBirth = dateOfBirth.Time.UTC()
	}

	return customer, nil
}

const selectCustomerQuery = `
	SELECT id, sub, username, first_name, last_name, email, phone, date_of_birth,
	       created_by, created_on, updated_on
	FROM customers`

var _ domain.CustomerRepository = (*customerRepository)(nil)
