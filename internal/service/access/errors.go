package access

import "errors"

var (
	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = errors.New("access: staff not found")

	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("access: schedule not found")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("access: user not found")

	// ErrForbidden возвращается, когда у пользователя нет прав доступа
	ErrForbidden = errors.New("access: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("access: internal error")
)
