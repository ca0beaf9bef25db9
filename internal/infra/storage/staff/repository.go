package staff

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

// Repository репозиторий сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сотрудников
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select("st.id", "st.name", "st.store_id", "s.name", "st.user_id").
		From("staff st").
		Join("stores s ON s.id = st.store_id")
}

func buildGetByID(id int64, forUpdate bool) (string, []interface{}, error) {
	q := baseSelect().Where(squirrel.Eq{"st.id": id})
	// Внутри транзакции блокируем строку сотрудника: попытки бронирования
	// одного сотрудника выполняются последовательно
	if forUpdate {
		q = q.Suffix("FOR UPDATE OF st")
	}
	return q.ToSql()
}

// GetByID получает сотрудника по ID вместе с названием магазина
// Если в контексте есть транзакция, строка сотрудника блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetByID(id, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Staff
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.StoreID, &s.StoreName, &s.UserID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan staff: %w", ErrScanRow, err)
	}

	return &s, nil
}

// ListByStore возвращает сотрудников магазина, отсортированных по имени
func (r *Repository) ListByStore(ctx context.Context, storeID int64) ([]*domain.Staff, error) {
	query, args, err := baseSelect().
		Where(squirrel.Eq{"st.store_id": storeID}).
		OrderBy("st.name ASC", "st.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByStore - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListByStore", query, args)
}

// ListByUser возвращает все записи сотрудника, привязанные к пользователю
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Staff, error) {
	query, args, err := baseSelect().
		Where(squirrel.Eq{"st.user_id": userID}).
		OrderBy("st.name ASC", "st.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	return r.list(ctx, "ListByUser", query, args)
}

func (r *Repository) list(ctx context.Context, op, query string, args []interface{}) ([]*domain.Staff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	result := make([]*domain.Staff, 0)
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.StoreID, &s.StoreName, &s.UserID); err != nil {
			return nil, fmt.Errorf("%w: %s - scan staff: %v", ErrScanRow, op, err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return result, nil
}
