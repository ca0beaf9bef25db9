package update_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
)

const (
	msgInvalidScheduleID  = "некорректный ID расписания"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание: время в формате YYYY-MM-DD HH:MM, конец не раньше начала, название обязательно"
	msgNotFound           = "расписание не найдено"
	msgConflict           = "на это время уже есть бронирование"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
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

// Handle PUT /api/v1/mypage/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	scheduleID, err := handlers.PathInt64(r, "scheduleId")
	if err != nil {
		h.logger.Warn("PUT /mypage/schedules/{id} - Invalid schedule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /mypage/schedules/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.Update(r.Context(), principal, scheduleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, schedules.ErrForbidden):
			h.logger.Warn("PUT /mypage/schedules/{id} - Forbidden: user_id=%d, schedule_id=%d", principal.UserID, scheduleID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSchedule)
		case errors.Is(err, schedules.ErrConflict):
			handlers.RespondError(w, http.StatusConflict, msgConflict)
		default:
			h.logger.Error("PUT /mypage/schedules/{id} - Failed to update schedule: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, updated)
}
