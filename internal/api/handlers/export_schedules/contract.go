package export_schedules

import (
	"context"
	"io"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

type SchedulesService interface {
	ExportXLSX(ctx context.Context, p domain.Principal, staffID int64, w io.Writer) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
