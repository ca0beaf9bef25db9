package schedules

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// AccessChecker проверка прав на сотрудников, расписания и страницы пользователей
type AccessChecker interface {
	CheckStaff(ctx context.Context, p domain.Principal, staffID int64) (*domain.Staff, error)
	CheckSchedule(ctx context.Context, p domain.Principal, scheduleID int64) (*domain.Schedule, *domain.Staff, error)
	CheckUserPage(ctx context.Context, p domain.Principal, userID int64) (*domain.User, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	Update(ctx context.Context, id int64, start, end time.Time, name string) (*domain.Schedule, error)
	Delete(ctx context.Context, id int64) error
	FindByStaffOrderedByStart(ctx context.Context, staffID int64, from time.Time) ([]*domain.Schedule, error)
	FindByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.Schedule, error)
}

// Clock источник текущего времени в локальной зоне
type Clock interface {
	Now() time.Time
	Local(t time.Time) time.Time
	Location() *time.Location
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
