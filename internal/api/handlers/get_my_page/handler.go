package get_my_page

import (
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
)

const msgUnauthorized = "требуется авторизация"

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

// Handle GET /api/v1/mypage
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	page, err := h.service.MyPage(r.Context(), principal)
	if err != nil {
		h.logger.Error("GET /mypage - Failed to build page: user_id=%d, error=%v", principal.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, page)
}
