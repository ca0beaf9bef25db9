package get_schedule

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

// Handle GET /api/v1/mypage/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	scheduleID, err := handlers.PathInt64(r, "scheduleId")
	if err != nil {
		h.logger.Warn("GET /mypage/schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	schedule, err := h.service.Get(r.Context(), principal, scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, schedules.ErrForbidden):
			h.logger.Warn("GET /mypage/schedules/{id} - Forbidden: user_id=%d, schedule_id=%d", principal.UserID, scheduleID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /mypage/schedules/{id} - Failed to get schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, schedule)
}
