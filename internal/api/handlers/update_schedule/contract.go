package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
)

type SchedulesService interface {
	Update(ctx context.Context, p domain.Principal, scheduleID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
