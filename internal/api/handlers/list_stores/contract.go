package list_stores

import (
	"context"

	"github.com/m04kA/SMC-StaffBooking/internal/service/directory/models"
)

type DirectoryService interface {
	ListStores(ctx context.Context) ([]*models.StoreResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
