package delete_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "некорректный ID расписания"
	msgNotFound          = "расписание не найдено"
	msgUnauthorized      = "требуется авторизация"
	msgForbidden         = "доступ запрещен"
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

// Handle DELETE /api/v1/mypage/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	scheduleID, err := handlers.PathInt64(r, "scheduleId")
	if err != nil {
		h.logger.Warn("DELETE /mypage/schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), principal, scheduleID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, schedules.ErrForbidden):
			h.logger.Warn("DELETE /mypage/schedules/{id} - Forbidden: user_id=%d, schedule_id=%d", principal.UserID, scheduleID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("DELETE /mypage/schedules/{id} - Failed to delete schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /mypage/schedules/{id} - Schedule deleted: schedule_id=%d", scheduleID)
	handlers.RespondNoContent(w)
}
