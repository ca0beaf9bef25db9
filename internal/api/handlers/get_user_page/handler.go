package get_user_page

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgUserNotFound  = "пользователь не найден"
	msgUnauthorized  = "требуется авторизация"
	msgForbidden     = "доступ запрещен"
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

// Handle GET /api/v1/mypage/users/{userId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID, err := handlers.PathInt64(r, "userId")
	if err != nil {
		h.logger.Warn("GET /mypage/users/{id} - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	page, err := h.service.UserPage(r.Context(), principal, userID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, schedules.ErrForbidden):
			h.logger.Warn("GET /mypage/users/{id} - Forbidden: user_id=%d, target=%d", principal.UserID, userID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /mypage/users/{id} - Failed to build page: target=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
