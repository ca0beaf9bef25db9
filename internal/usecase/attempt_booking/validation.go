package attempt_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// validateRequest валидирует входные данные и нормализует имя
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	req.BookerName = strings.TrimSpace(req.BookerName)
	if req.BookerName == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.BookerName) > domain.MaxBookerNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxBookerNameLength)
	}

	return nil
}
