package get_day_detail

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	getDayDetail "github.com/m04kA/SMC-StaffBooking/internal/usecase/get_day_detail"
)

type GetDayDetailUseCase interface {
	Execute(ctx context.Context, req *getDayDetail.Request) (*domain.DayDetail, error)
}

type AccessChecker interface {
	CheckStaff(ctx context.Context, p domain.Principal, staffID int64) (*domain.Staff, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
