package add_holiday

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	addHoliday "github.com/m04kA/SMC-StaffBooking/internal/usecase/add_holiday"
)

type AddHolidayUseCase interface {
	Execute(ctx context.Context, req *addHoliday.Request) (*domain.Schedule, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
