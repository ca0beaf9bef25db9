package attempt_booking

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("attempt_booking: staff not found")

	// ErrConflict возвращается, когда слот уже занят (проиграна гонка за слот).
	// Пользователю показывается domain.ConflictMessage.
	ErrConflict = errors.New("attempt_booking: slot already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("attempt_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("attempt_booking: internal error")
)
