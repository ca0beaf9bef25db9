package get_day_detail

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("get_day_detail: staff not found")

	// ErrInvalidDate возвращается при несуществующей дате
	ErrInvalidDate = errors.New("get_day_detail: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_day_detail: internal error")
)
