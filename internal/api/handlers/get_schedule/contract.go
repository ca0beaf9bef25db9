package get_schedule

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
)

type SchedulesService interface {
	Get(ctx context.Context, p domain.Principal, scheduleID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
