package add_holiday

import "github.com/m04kA/SMC-StaffBooking/internal/domain"

// Request модель запроса на блокировку часа сотрудником
type Request struct {
	Principal domain.Principal
	StaffID   int64
	Year      int
	Month     int
	Day       int
	Hour      int
}
