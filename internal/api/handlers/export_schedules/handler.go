package export_schedules

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgInvalidStaffID = "некорректный ID сотрудника"
	msgStaffNotFound  = "сотрудник не найден"
	msgUnauthorized   = "требуется авторизация"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/mypage/staff/{staffId}/schedules/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /mypage/staff/{id}/schedules/export - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	// Книга собирается в буфер, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	if err := h.service.ExportXLSX(r.Context(), principal, staffID, &buf); err != nil {
		switch {
		case errors.Is(err, schedules.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, schedules.ErrForbidden):
			h.logger.Warn("GET /mypage/staff/{id}/schedules/export - Forbidden: user_id=%d, staff_id=%d", principal.UserID, staffID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /mypage/staff/{id}/schedules/export - Failed to export: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeXLSX)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedules-%d.xlsx"`, staffID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /mypage/staff/{id}/schedules/export - Failed to write response: %v", err)
	}
}
