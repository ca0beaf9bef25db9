package add_holiday

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
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

// Clock интерфейс локального времени
type Clock interface {
	DateTime(year, month, day, hour int) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
