package directory

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// StoreRepository интерфейс репозитория магазинов
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
}

// StaffRepository интерфейс репозитория сотрудников
type StaffRepository interface {
	ListByStore(ctx context.Context, storeID int64) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
