package get_calendar

import (
	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	buildWeekGrid "github.com/m04kA/SMC-StaffBooking/internal/usecase/build_week_grid"
)

// StaffResponse сотрудник, для которого построен календарь
type StaffResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StoreID   int64  `json:"storeId"`
	StoreName string `json:"storeName,omitempty"`
}

// RowResponse строка календаря: один час по всем дням
type RowResponse struct {
	Hour      int    `json:"hour"`
	Available []bool `json:"available"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Staff             StaffResponse `json:"staff"`
	Days              []string      `json:"days"`
	Rows              []RowResponse `json:"rows"`
	FirstDay          string        `json:"firstDay"`
	LastDay           string        `json:"lastDay"`
	PreviousWeekStart string        `json:"previousWeekStart"`
	NextWeekStart     string        `json:"nextWeekStart"`
	Today             string        `json:"today"`
	PublicHolidays    []string      `json:"publicHolidays"`
}

// FromUseCaseResponse конвертирует сетку в HTTP response
func FromUseCaseResponse(resp *buildWeekGrid.Response) *CalendarResponse {
	grid := resp.Grid

	days := make([]string, 0, len(grid.Days))
	for _, d := range grid.Days {
		days = append(days, d.Format(domain.DateFormat))
	}

	rows := make([]RowResponse, 0, len(grid.Hours))
	for i, hour := range grid.Hours {
		cells := make([]bool, len(grid.Cells[i]))
		copy(cells, grid.Cells[i])
		rows = append(rows, RowResponse{Hour: hour, Available: cells})
	}

	holidays := grid.PublicHolidays
	if holidays == nil {
		holidays = []string{}
	}

	return &CalendarResponse{
		Staff: StaffResponse{
			ID:        resp.Staff.ID,
			Name:      resp.Staff.Name,
			StoreID:   resp.Staff.StoreID,
			StoreName: resp.Staff.StoreName,
		},
		Days:              days,
		Rows:              rows,
		FirstDay:          grid.FirstDay().Format(domain.DateFormat),
		LastDay:           grid.LastDay().Format(domain.DateFormat),
		PreviousWeekStart: grid.PreviousWeekStart.Format(domain.DateFormat),
		NextWeekStart:     grid.NextWeekStart.Format(domain.DateFormat),
		Today:             grid.Today.Format(domain.DateFormat),
		PublicHolidays:    holidays,
	}
}
