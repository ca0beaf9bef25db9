package get_my_page

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
)

type SchedulesService interface {
	MyPage(ctx context.Context, p domain.Principal) (*models.MyPageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
