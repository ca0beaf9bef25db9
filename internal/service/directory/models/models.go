package models

import "github.com/m04kA/SMC-StaffBooking/internal/domain"

// StoreResponse магазин
type StoreResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// StaffResponse сотрудник магазина
type StaffResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	StoreID int64  `json:"storeId"`
}

// StaffListResponse сотрудники магазина
type StaffListResponse struct {
	Store *StoreResponse   `json:"store"`
	Staff []*StaffResponse `json:"staff"`
}

// FromDomainStores конвертирует список магазинов
func FromDomainStores(list []*domain.Store) []*StoreResponse {
	result := make([]*StoreResponse, 0, len(list))
	for _, s := range list {
		result = append(result, &StoreResponse{ID: s.ID, Name: s.Name})
	}
	return result
}

// FromDomainStaffList конвертирует магазин и его сотрудников
func FromDomainStaffList(store *domain.Store, list []*domain.Staff) *StaffListResponse {
	staff := make([]*StaffResponse, 0, len(list))
	for _, s := range list {
		staff = append(staff, &StaffResponse{ID: s.ID, Name: s.Name, StoreID: s.StoreID})
	}
	return &StaffListResponse{
		Store: &StoreResponse{ID: store.ID, Name: store.Name},
		Staff: staff,
	}
}
