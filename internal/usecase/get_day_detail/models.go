package get_day_detail

// Request модель запроса расписания сотрудника на день
type Request struct {
	StaffID int64
	Year    int
	Month   int
	Day     int
}
