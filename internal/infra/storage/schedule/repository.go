package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/psqlbuilder"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Repository репозиторий для работы с расписаниями сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOverlapping возвращает расписания сотрудника, пересекающиеся с окном [from, to)
func (r *Repository) FindOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFindOverlapping(staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// ExistsOverlapping проверяет, есть ли у сотрудника расписание, пересекающееся с [start, end)
// Внутри транзакции вызывающий должен предварительно заблокировать строку сотрудника
// (staff.Repository.GetByID добавляет FOR UPDATE).
func (r *Repository) ExistsOverlapping(ctx context.Context, staffID int64, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildExistsOverlapping(staffID, start, end)
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsOverlapping - execute query: %w", ErrExecQuery, err)
	}

	return true, nil
}

// Create сохраняет новое расписание
// Нарушение уникального индекса по (staff_id, start_at) возвращается как ErrDuplicate.
func (r *Repository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("staff_id", "start_at", "end_at", "name", "kind").
		Values(s.StaffID, s.Start, s.End, s.Name, s.Kind).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case codeUniqueViolation:
				return nil, fmt.Errorf("%w: Create - %v", ErrDuplicate, err)
			case codeForeignKeyViolation:
				return nil, fmt.Errorf("%w: Create - staff id=%d", ErrStaffNotFound, s.StaffID)
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// GetByID получает расписание по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %w", ErrScanRow, err)
	}

	return s, nil
}

// Update изменяет время и название расписания
func (r *Repository) Update(ctx context.Context, id int64, start, end time.Time, name string) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("start_at", start).
		Set("end_at", end).
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	s, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == codeUniqueViolation {
			return nil, fmt.Errorf("%w: Update - %v", ErrDuplicate, err)
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	return s, nil
}

// Delete удаляет расписание
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// FindByStaffOrderedByStart возвращает расписания сотрудника, начинающиеся не раньше from
func (r *Repository) FindByStaffOrderedByStart(ctx context.Context, staffID int64, from time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFindByStaffFrom(staffID, from)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByStaffOrderedByStart - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByStaffOrderedByStart - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// FindByUserFrom возвращает расписания всех сотрудников пользователя, начинающиеся не раньше from
func (r *Repository) FindByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildFindByUserFrom(userID, from)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByUserFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByUserFrom - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var (
		s    domain.Schedule
		kind string
	)
	if err := row.Scan(&s.ID, &s.StaffID, &s.Start, &s.End, &s.Name, &kind, &s.CreatedAt); err != nil {
		return nil, err
	}
	s.Kind = domain.ScheduleKind(kind)
	return &s, nil
}

func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows iteration: %w", ErrScanRow, err)
	}
	return schedules, nil
}
