package build_week_grid

import "github.com/m04kA/SMC-StaffBooking/internal/domain"

// Date компоненты локальной даты
type Date struct {
	Year  int
	Month int
	Day   int
}

// Request модель запроса на построение недельного календаря
type Request struct {
	StaffID  int64
	BaseDate *Date // nil = сегодня
}

// Response недельная сетка доступности и сотрудник, для которого она построена
type Response struct {
	Staff *domain.Staff
	Grid  *domain.WeekGrid
}
