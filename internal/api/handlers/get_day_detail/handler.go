package get_day_detail

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/access"
	getDayDetail "github.com/m04kA/SMC-StaffBooking/internal/usecase/get_day_detail"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidDate    = "некорректная дата"
	msgStaffNotFound  = "сотрудник не найден"
	msgUnauthorized   = "требуется авторизация"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	useCase GetDayDetailUseCase
	access  AccessChecker
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase GetDayDetailUseCase, access AccessChecker, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/mypage/staff/{staffId}/days/{year}/{month}/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /mypage/staff/{id}/days - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}
	year, month, day, ok, err := handlers.PathDate(r)
	if err != nil || !ok {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if _, err := h.access.CheckStaff(r.Context(), principal, staffID); err != nil {
		switch {
		case errors.Is(err, access.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, access.ErrForbidden):
			h.logger.Warn("GET /mypage/staff/{id}/days - Forbidden: user_id=%d, staff_id=%d", principal.UserID, staffID)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("GET /mypage/staff/{id}/days - Access check failed: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	detail, err := h.useCase.Execute(r.Context(), &getDayDetail.Request{
		StaffID: staffID,
		Year:    year,
		Month:   month,
		Day:     day,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDayDetail.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, getDayDetail.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /mypage/staff/{id}/days - Failed to get day detail: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(detail, h.loc))
}
