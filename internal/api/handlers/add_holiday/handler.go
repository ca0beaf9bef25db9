package add_holiday

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	addHoliday "github.com/m04kA/SMC-StaffBooking/internal/usecase/add_holiday"
)

const (
	msgInvalidStaffID = "некорректный ID сотрудника"
	msgInvalidSlot    = "некорректные дата или час"
	msgStaffNotFound  = "сотрудник не найден"
	msgUnauthorized   = "требуется авторизация"
	msgForbidden      = "доступ запрещен"
)

// HolidayResponse HTTP response model
type HolidayResponse struct {
	ID      int64  `json:"id"`
	StaffID int64  `json:"staffId"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
}

type Handler struct {
	useCase AddHolidayUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase AddHolidayUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle POST /api/v1/mypage/staff/{staffId}/holidays/{year}/{month}/{day}/{hour}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("POST /mypage/staff/{id}/holidays - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}
	year, month, day, ok, err := handlers.PathDate(r)
	if err != nil || !ok {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}
	hour, err := handlers.PathInt(r, "hour")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	created, err := h.useCase.Execute(r.Context(), &addHoliday.Request{
		Principal: principal,
		StaffID:   staffID,
		Year:      year,
		Month:     month,
		Day:       day,
		Hour:      hour,
	})
	if err != nil {
		switch {
		case errors.Is(err, addHoliday.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)
		case errors.Is(err, addHoliday.ErrForbidden):
			h.logger.Warn("POST /mypage/staff/{id}/holidays - Forbidden: user_id=%d, staff_id=%d", principal.UserID, staffID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, addHoliday.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		default:
			h.logger.Error("POST /mypage/staff/{id}/holidays - Failed to add holiday: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /mypage/staff/{id}/holidays - Holiday added: schedule_id=%d, staff_id=%d", created.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, &HolidayResponse{
		ID:      created.ID,
		StaffID: created.StaffID,
		Start:   created.Start.In(h.loc).Format(domain.DateTimeFormat),
		End:     created.End.In(h.loc).Format(domain.DateTimeFormat),
		Name:    created.Name,
		Kind:    string(created.Kind),
	})
}
