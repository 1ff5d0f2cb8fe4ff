package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

type referenceDataRepository struct {
	db *sql.DB
}

// NewReferenceDataRepository создаёт PostgreSQL-реализацию ReferenceDataRepository.
func NewReferenceDataRepository(store *Store) domain.ReferenceDataRepository {
	return &referenceDataRepository{db: store.DB()}
}

func (r *referenceDataRepository) Create(item domain.ReferenceDataItem) (domain.ReferenceDataItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO reference_data (data_type, text, created_by, created_on, updated_on)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id
	`,
		string(item.DataType), item.Text,
		item.CreatedBy, item.CreatedOn, item.UpdatedOn,
	).Scan(&item.ID)
	if err != nil {
		return domain.ReferenceDataItem{}, fmt.Errorf("insert reference data: %w", err)
	}

	return item, nil
}

func (r *referenceDataRepository) Get(id int64) (domain.ReferenceDataItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		item     domain.ReferenceDataItem
		dataType string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, data_type, text, created_by, created_on, updated_on
		FROM reference_data
		WHERE id = $1
	`, id).Scan(&item.ID, &dataType, &item.Text, &item.CreatedBy, &item.CreatedOn, &item.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ReferenceDataItem{}, domain.ErrReferenceDataNotFound
		}
		return domain.ReferenceDataItem{}, fmt.Errorf("select reference data: %w", err)
	}
	item.DataType = domain.ReferenceDataType(dataType)

	return item, nil
}

func (r *referenceDataRepository) ListByType(dataType domain.ReferenceDataType) ([]domain.ReferenceDataItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, data_type, text, created_by, created_on, updated_on
		FROM reference_data
		WHERE data_type = $1
		ORDER BY id ASC
	`, string(dataType))
	if err != nil {
		return nil, fmt.Errorf("list reference data: %w", err)
	}
	defer rows.Close()

	items := make([]domain.ReferenceDataItem, 0)
	for rows.Next() {
		var (
			item domain.ReferenceDataItem
			raw  string
		)
		if err := rows.Scan(&item.ID, &raw, &item.Text, &item.CreatedBy, &item.CreatedOn, &item.UpdatedOn); err != nil {
			return nil, fmt.Errorf("scan reference data row: %w", err)
		}
		item.DataType = domain.ReferenceDataType(raw)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reference data rows: %w", err)
	}

	return items, nil
}

var _ domain.ReferenceDataRepository = (*referenceDataRepository)(nil)
