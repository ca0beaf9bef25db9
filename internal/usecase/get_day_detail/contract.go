package get_day_detail

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	FindOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Schedule, error)
}

// Clock интерфейс локального времени
type Clock interface {
	Date(year, month, day int) (time.Time, error)
	NextDay(date time.Time) time.Time
	Local(t time.Time) time.Time
	SameDate(a, b time.Time) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
