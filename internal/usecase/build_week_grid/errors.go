package build_week_grid

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("build_week_grid: staff not found")

	// ErrInvalidDate возвращается при несуществующей базовой дате
	ErrInvalidDate = errors.New("build_week_grid: invalid base date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("build_week_grid: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("build_week_grid: internal error")
)
