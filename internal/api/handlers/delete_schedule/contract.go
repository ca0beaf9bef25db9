package delete_schedule

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

type SchedulesService interface {
	Delete(ctx context.Context, p domain.Principal, scheduleID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
