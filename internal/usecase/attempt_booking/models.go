package attempt_booking

import "time"

// Request модель запроса на бронирование часа у сотрудника
type Request struct {
	StaffID    int64
	Year       int
	Month      int
	Day        int
	Hour       int
	BookerName string
}

// Response созданное бронирование
type Response struct {
	ID        int64
	StaffID   int64
	Start     time.Time
	End       time.Time
	Name      string
	CreatedAt time.Time
}
