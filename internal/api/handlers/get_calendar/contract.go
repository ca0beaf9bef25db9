package get_calendar

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	buildWeekGrid "github.com/m04kA/SMC-StaffBooking/internal/usecase/build_week_grid"
)

type BuildWeekGridUseCase interface {
	Execute(ctx context.Context, req *buildWeekGrid.Request) (*buildWeekGrid.Response, error)
}

type AccessChecker interface {
	CheckStaff(ctx context.Context, p domain.Principal, staffID int64) (*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
