package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	attemptBooking "github.com/m04kA/SMC-StaffBooking/internal/usecase/attempt_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStaffID     = "некорректный ID сотрудника"
	msgInvalidSlot        = "некорректные дата или час бронирования"
	msgInvalidName        = "имя обязательно и не длиннее 255 символов"
	msgStaffNotFound      = "сотрудник не найден"
)

type Handler struct {
	useCase AttemptBookingUseCase
	logger  Logger
}

func NewHandler(useCase AttemptBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff/{staffId}/booking/{year}/{month}/{day}/{hour}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathInt64(r, "staffId")
	if err != nil {
		h.logger.Warn("POST /staff/{id}/booking - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	year, month, day, ok, err := handlers.PathDate(r)
	if err != nil || !ok {
		h.logger.Warn("POST /staff/{id}/booking - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}
	hour, err := handlers.PathInt(r, "hour")
	if err != nil {
		h.logger.Warn("POST /staff/{id}/booking - Invalid hour: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/booking - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /staff/{id}/booking - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(msgInvalidName, err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(staffID, year, month, day, hour))
	if err != nil {
		switch {
		case errors.Is(err, attemptBooking.ErrConflict):
			h.logger.Info("POST /staff/{id}/booking - Slot already taken: staff_id=%d, %04d-%02d-%02d %02d:00",
				staffID, year, month, day, hour)
			handlers.RespondJSON(w, http.StatusOK, ConflictResponse())

		case errors.Is(err, attemptBooking.ErrStaffNotFound):
			h.logger.Warn("POST /staff/{id}/booking - Staff not found: staff_id=%d", staffID)
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, attemptBooking.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/booking - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		default:
			h.logger.Error("POST /staff/{id}/booking - Failed to create booking: staff_id=%d, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/booking - Booking created: schedule_id=%d, staff_id=%d", result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
