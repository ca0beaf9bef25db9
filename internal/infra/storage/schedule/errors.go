package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicate возвращается при нарушении уникальности (staff_id, start_at) для бронирований
	ErrDuplicate = errors.New("schedule.repository: booking for this slot already exists")

	// ErrStaffNotFound возвращается, когда сотрудник, на которого ссылается расписание, не существует
	ErrStaffNotFound = errors.New("schedule.repository: staff not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
