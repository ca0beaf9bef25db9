package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/psqlbuilder"
)

// Repository репозиторий магазинов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория магазинов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает магазин по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Store
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan store: %w", ErrScanRow, err)
	}

	return &s, nil
}

// List возвращает все магазины, отсортированные по названию
func (r *Repository) List(ctx context.Context) ([]*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name").
		From("stores").
		OrderBy("name ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("%w: List - scan store: %v", ErrScanRow, err)
		}
		stores = append(stores, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %w", ErrScanRow, err)
	}

	return stores, nil
}
