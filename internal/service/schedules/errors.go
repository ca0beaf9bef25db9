package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedules.service: schedule not found")

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("schedules.service: staff not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("schedules.service: user not found")

	// ErrForbidden возвращается, когда у пользователя нет прав доступа
	ErrForbidden = errors.New("schedules.service: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedules.service: invalid input data")

	// ErrConflict возвращается, когда новое время совпадает с существующим бронированием
	ErrConflict = errors.New("schedules.service: slot already booked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedules.service: internal error")
)
