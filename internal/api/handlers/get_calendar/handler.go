package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/service/access"
	buildWeekGrid "github.com/m04kA/SMC-StaffBooking/internal/usecase/build_week_grid"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidDate    = "некорректная дата"
	msgStaffNotFound  = "сотрудник не найден"
	msgUnauthorized   = "требуется авторизация"
	msgForbidden      = "доступ запрещен"
)

// Handler недельный календарь сотрудника.
// Публичный вариант доступен всем, личный требует прав на сотрудника.
type Handler struct {
	useCase BuildWeekGridUseCase
	access  AccessChecker
	logger  Logger
}

// NewPublicHandler календарь для клиентов
func NewPublicHandler(useCase BuildWeekGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NewPrivateHandler календарь на странице сотрудника
func NewPrivateHandler(useCase BuildWeekGridUseCase, access AccessChecker, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		access:  access,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/calendar[/{year}/{month}/{day}]
// и GET /api/v1/mypage/staff/{staffId}/calendar[/{year}/{month}/{day}]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/calendar - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	req := &buildWeekGrid.Request{StaffID: staffID}
	year, month, day, ok, err := handlers.PathDate(r)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/calendar - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if ok {
		req.BaseDate = &buildWeekGrid.Date{Year: year, Month: month, Day: day}
	}

	// Личный календарь: сначала проверяем права
	if h.access != nil {
		principal, ok := middleware.GetPrincipal(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}
		if _, err := h.access.CheckStaff(r.Context(), principal, staffID); err != nil {
			switch {
			case errors.Is(err, access.ErrStaffNotFound):
				handlers.RespondNotFound(w, msgStaffNotFound)
			case errors.Is(err, access.ErrForbidden):
				h.logger.Warn("GET /mypage/staff/{id}/calendar - Forbidden: user_id=%d, staff_id=%d", principal.UserID, staffID)
				handlers.RespondForbidden(w, msgForbidden)
			default:
				h.logger.Error("GET /mypage/staff/{id}/calendar - Access check failed: staff_id=%d, error=%v", staffID, err)
				handlers.RespondInternalError(w)
			}
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, buildWeekGrid.ErrStaffNotFound):
			h.logger.Warn("GET /staff/{id}/calendar - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, buildWeekGrid.ErrInvalidDate), errors.Is(err, buildWeekGrid.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/calendar - Invalid request: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /staff/{id}/calendar - Failed to build calendar: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
