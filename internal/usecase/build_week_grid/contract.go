package build_week_grid

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

// Clock интерфейс локального времени (*localtime.Clock)
type Clock interface {
	Today() time.Time
	Date(year, month, day int) (time.Time, error)
	AddDays(date time.Time, n int) time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
