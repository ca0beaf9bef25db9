package directory

import (
	"context"
	"errors"
	"fmt"

	storeRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/store"
	"github.com/m04kA/SMC-StaffBooking/internal/service/directory/models"
)

// Service публичный справочник магазинов и сотрудников
type Service struct {
	storeRepo StoreRepository
	staffRepo StaffRepository
	logger    Logger
}

// NewService создает новый экземпляр справочника
func NewService(storeRepo StoreRepository, staffRepo StaffRepository, logger Logger) *Service {
	return &Service{
		storeRepo: storeRepo,
		staffRepo: staffRepo,
		logger:    logger,
	}
}

// ListStores возвращает все магазины, отсортированные по названию
func (s *Service) ListStores(ctx context.Context) ([]*models.StoreResponse, error) {
	stores, err := s.storeRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListStores: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListStores - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainStores(stores), nil
}

// ListStaff возвращает сотрудников магазина, отсортированных по имени
func (s *Service) ListStaff(ctx context.Context, storeID int64) (*models.StaffListResponse, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		if errors.Is(err, storeRepo.ErrStoreNotFound) {
			s.logger.Warn("ListStaff: store id=%d not found", storeID)
			return nil, ErrStoreNotFound
		}
		s.logger.Error("ListStaff: failed to get store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: ListStaff - get store: %v", ErrInternal, err)
	}

	staff, err := s.staffRepo.ListByStore(ctx, storeID)
	if err != nil {
		s.logger.Error("ListStaff: failed to list staff of store id=%d: %v", storeID, err)
		return nil, fmt.Errorf("%w: ListStaff - list staff: %v", ErrInternal, err)
	}

	return models.FromDomainStaffList(store, staff), nil
}
