package list_staff

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ListStaff(ctx context.Context, storeID int64) (*models.StaffListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
