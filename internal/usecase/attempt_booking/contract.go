package attempt_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// StaffRepository интерфейс репозитория сотрудников
// Внутри транзакции GetByID блокирует строку сотрудника.
type StaffRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Staff, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	ExistsOverlapping(ctx context.Context, staffID int64, start, end time.Time) (bool, error)
	Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock интерфейс локального времени
type Clock interface {
	DateTime(year, month, day, hour int) (time.Time, error)
}

// Metrics счетчик исходов попыток бронирования
type Metrics interface {
	IncBookingAttempt(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
