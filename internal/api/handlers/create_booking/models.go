package create_booking

import (
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	attemptBooking "github.com/m04kA/SMC-StaffBooking/internal/usecase/attempt_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

// BookingResponse HTTP response model.
// Booked=false означает, что слот занят: Message содержит текст для пользователя.
type BookingResponse struct {
	Booked   bool              `json:"booked"`
	Message  string            `json:"message,omitempty"`
	Schedule *ScheduleResponse `json:"schedule,omitempty"`
}

// ScheduleResponse созданное бронирование
type ScheduleResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// ToUseCaseRequest собирает запрос use case из пути и тела
func (r *CreateBookingRequest) ToUseCaseRequest(staffID int64, year, month, day, hour int) *attemptBooking.Request {
	return &attemptBooking.Request{
		StaffID:    staffID,
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		BookerName: r.Name,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *attemptBooking.Response) *BookingResponse {
	return &BookingResponse{
		Booked: true,
		Schedule: &ScheduleResponse{
			ID:        resp.ID,
			StaffID:   resp.StaffID,
			Start:     resp.Start.Format(domain.DateTimeFormat),
			End:       resp.End.Format(domain.DateTimeFormat),
			Name:      resp.Name,
			CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		},
	}
}

// ConflictResponse ответ проигравшему в гонке за слот
func ConflictResponse() *BookingResponse {
	return &BookingResponse{Booked: false, Message: domain.ConflictMessage}
}
