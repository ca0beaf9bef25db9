package get_day_detail

import (
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// ScheduleResponse расписание в ячейке часа
type ScheduleResponse struct {
	ID    int64  `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
}

// HourResponse расписания одного часа
type HourResponse struct {
	Hour      int                 `json:"hour"`
	Schedules []*ScheduleResponse `json:"schedules"`
}

// DayDetailResponse HTTP response model
type DayDetailResponse struct {
	StaffID int64           `json:"staffId"`
	Date    string          `json:"date"`
	Hours   []*HourResponse `json:"hours"`
}

// FromDomain конвертирует детализацию дня, время в зоне loc
func FromDomain(d *domain.DayDetail, loc *time.Location) *DayDetailResponse {
	hours := make([]*HourResponse, 0, len(d.Hours))
	for _, h := range d.Hours {
		list := make([]*ScheduleResponse, 0, len(d.Slots[h]))
		for _, s := range d.Slots[h] {
			list = append(list, &ScheduleResponse{
				ID:    s.ID,
				Start: s.Start.In(loc).Format(domain.TimeFormat),
				End:   s.End.In(loc).Format(domain.TimeFormat),
				Name:  s.Name,
				Kind:  string(s.Kind),
			})
		}
		hours = append(hours, &HourResponse{Hour: h, Schedules: list})
	}
	return &DayDetailResponse{
		StaffID: d.StaffID,
		Date:    d.Date.Format(domain.DateFormat),
		Hours:   hours,
	}
}
