package user

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

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByUsername получает пользователя по логину
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, "GetByUsername", squirrel.Eq{"username": username})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash", "is_superuser").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.IsSuperuser)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %w", ErrScanRow, op, err)
	}

	return &u, nil
}
