package memory

import (
	"context"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// StoreRepository представление хранилища с интерфейсом store.Repository
type StoreRepository struct{ s *Storage }

// StaffRepository представление хранилища с интерфейсом staff.Repository
type StaffRepository struct{ s *Storage }

// UserRepository представление хранилища с интерфейсом user.Repository
type UserRepository struct{ s *Storage }

// ScheduleRepository представление хранилища с интерфейсом schedule.Repository
type ScheduleRepository struct{ s *Storage }

func (s *Storage) Stores() StoreRepository       { return StoreRepository{s} }
func (s *Storage) StaffRepo() StaffRepository    { return StaffRepository{s} }
func (s *Storage) Users() UserRepository         { return UserRepository{s} }
func (s *Storage) Schedules() ScheduleRepository { return ScheduleRepository{s} }

func (r StoreRepository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	return r.s.GetStore(ctx, id)
}

func (r StoreRepository) List(ctx context.Context) ([]*domain.Store, error) {
	return r.s.List(ctx)
}

func (r StaffRepository) GetByID(ctx context.Context, id int64) (*domain.Staff, error) {
	return r.s.GetStaff(ctx, id)
}

func (r StaffRepository) ListByStore(ctx context.Context, storeID int64) ([]*domain.Staff, error) {
	return r.s.ListByStore(ctx, storeID)
}

func (r StaffRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Staff, error) {
	return r.s.ListByUser(ctx, userID)
}

func (r UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.s.GetUser(ctx, id)
}

func (r UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.s.GetByUsername(ctx, username)
}

func (r ScheduleRepository) FindOverlapping(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Schedule, error) {
	return r.s.FindOverlapping(ctx, staffID, from, to)
}

func (r ScheduleRepository) ExistsOverlapping(ctx context.Context, staffID int64, start, end time.Time) (bool, error) {
	return r.s.ExistsOverlapping(ctx, staffID, start, end)
}

func (r ScheduleRepository) Create(ctx context.Context, sc *domain.Schedule) (*domain.Schedule, error) {
	return r.s.Create(ctx, sc)
}

func (r ScheduleRepository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	return r.s.GetSchedule(ctx, id)
}

func (r ScheduleRepository) Update(ctx context.Context, id int64, start, end time.Time, name string) (*domain.Schedule, error) {
	return r.s.Update(ctx, id, start, end, name)
}

func (r ScheduleRepository) Delete(ctx context.Context, id int64) error {
	return r.s.Delete(ctx, id)
}

func (r ScheduleRepository) FindByStaffOrderedByStart(ctx context.Context, staffID int64, from time.Time) ([]*domain.Schedule, error) {
	return r.s.FindByStaffOrderedByStart(ctx, staffID, from)
}

func (r ScheduleRepository) FindByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.Schedule, error) {
	return r.s.FindByUserFrom(ctx, userID, from)
}
