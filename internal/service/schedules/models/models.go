package models

import (
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на изменение расписания.
// Время передается в локальной зоне в формате YYYY-MM-DD HH:MM.
type UpdateScheduleRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Name  string `json:"name"`
}

// Response модели

// ScheduleResponse расписание
type ScheduleResponse struct {
	ID        int64  `json:"id"`
	StaffID   int64  `json:"staffId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Holiday   bool   `json:"holiday"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// StaffResponse сотрудник
type StaffResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StoreID   int64  `json:"storeId"`
	StoreName string `json:"storeName,omitempty"`
	UserID    int64  `json:"userId"`
}

// MyPageResponse сотрудники пользователя и его будущие расписания
type MyPageResponse struct {
	UserID    int64               `json:"userId"`
	Staff     []*StaffResponse    `json:"staff"`
	Schedules []*ScheduleResponse `json:"schedules"`
}

// Converters

// FromDomainSchedule конвертирует domain.Schedule в ScheduleResponse, время в зоне loc
func FromDomainSchedule(s *domain.Schedule, loc *time.Location) *ScheduleResponse {
	resp := &ScheduleResponse{
		ID:      s.ID,
		StaffID: s.StaffID,
		Start:   s.Start.In(loc).Format(domain.DateTimeFormat),
		End:     s.End.In(loc).Format(domain.DateTimeFormat),
		Name:    s.Name,
		Kind:    string(s.Kind),
		Holiday: s.IsHoliday(),
	}
	if !s.CreatedAt.IsZero() {
		resp.CreatedAt = s.CreatedAt.In(loc).Format(time.RFC3339)
	}
	return resp
}

// FromDomainSchedules конвертирует список расписаний
func FromDomainSchedules(list []*domain.Schedule, loc *time.Location) []*ScheduleResponse {
	result := make([]*ScheduleResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainSchedule(s, loc))
	}
	return result
}

// FromDomainStaff конвертирует domain.Staff в StaffResponse
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	return &StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		StoreID:   s.StoreID,
		StoreName: s.StoreName,
		UserID:    s.UserID,
	}
}

// FromDomainStaffList конвертирует список сотрудников
func FromDomainStaffList(list []*domain.Staff) []*StaffResponse {
	result := make([]*StaffResponse, 0, len(list))
	for _, s := range list {
		result = append(result, FromDomainStaff(s))
	}
	return result
}
