package add_holiday

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("add_holiday: staff not found")

	// ErrForbidden возвращается, когда пользователь не владеет сотрудником и не суперпользователь
	ErrForbidden = errors.New("add_holiday: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("add_holiday: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("add_holiday: internal error")
)
