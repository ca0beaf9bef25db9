// Package memory хранит данные в памяти процесса с теми же правилами, что и PostgreSQL схема:
// пересечение [start, end), уникальность (staff_id, start_at) для бронирований,
// каскадное удаление. Используется в тестах use case и сервисов.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
	storeRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/store"
	userRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/user"
)

// Storage in-memory хранилище
type Storage struct {
	mu        sync.RWMutex
	stores    map[int64]*domain.Store
	staff     map[int64]*domain.Staff
	users     map[int64]*domain.User
	schedules map[int64]*domain.Schedule
	nextID    int64
}

// New создает пустое хранилище
func New() *Storage {
	return &Storage{
		stores:    make(map[int64]*domain.Store),
		staff:     make(map[int64]*domain.Staff),
		users:     make(map[int64]*domain.User),
		schedules: make(map[int64]*domain.Schedule),
	}
}

func (s *Storage) id() int64 {
	s.nextID++
	return s.nextID
}

// AddStore добавляет магазин
func (s *Storage) AddStore(name string) *domain.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &domain.Store{ID: s.id(), Name: name}
	s.stores[st.ID] = st
	return st
}

// AddUser добавляет пользователя
func (s *Storage) AddUser(username, passwordHash string, superuser bool) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &domain.User{ID: s.id(), Username: username, PasswordHash: passwordHash, IsSuperuser: superuser}
	s.users[u.ID] = u
	return u
}

// AddStaff добавляет сотрудника магазина
func (s *Storage) AddStaff(name string, storeID, userID int64) *domain.Staff {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := &domain.Staff{ID: s.id(), Name: name, StoreID: storeID, UserID: userID}
	if store, ok := s.stores[storeID]; ok {
		st.StoreName = store.Name
	}
	s.staff[st.ID] = st
	return st
}

// DeleteStaff удаляет сотрудника вместе с его расписаниями
func (s *Storage) DeleteStaff(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.staff, id)
	for sid, sc := range s.schedules {
		if sc.StaffID == id {
			delete(s.schedules, sid)
		}
	}
}

// Stores

func (s *Storage) List(_ context.Context) ([]*domain.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Store, 0, len(s.stores))
	for _, st := range s.stores {
		c := *st
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *Storage) GetStore(_ context.Context, id int64) (*domain.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stores[id]
	if !ok {
		return nil, storeRepo.ErrStoreNotFound
	}
	c := *st
	return &c, nil
}

// Staff

func (s *Storage) GetStaff(_ context.Context, id int64) (*domain.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.staff[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	c := *st
	return &c, nil
}

func (s *Storage) ListByStore(_ context.Context, storeID int64) ([]*domain.Staff, error) {
	return s.filterStaff(func(st *domain.Staff) bool { return st.StoreID == storeID }), nil
}

func (s *Storage) ListByUser(_ context.Context, userID int64) ([]*domain.Staff, error) {
	return s.filterStaff(func(st *domain.Staff) bool { return st.UserID == userID }), nil
}

func (s *Storage) filterStaff(keep func(*domain.Staff) bool) []*domain.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Staff, 0)
	for _, st := range s.staff {
		if keep(st) {
			c := *st
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Users

func (s *Storage) GetUser(_ context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	c := *u
	return &c, nil
}

func (s *Storage) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Username == username {
			c := *u
			return &c, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

// Schedules

func (s *Storage) FindOverlapping(_ context.Context, staffID int64, from, to time.Time) ([]*domain.Schedule, error) {
	return s.filterSchedules(func(sc *domain.Schedule) bool {
		return sc.StaffID == staffID && sc.Overlaps(from, to)
	}), nil
}

func (s *Storage) ExistsOverlapping(ctx context.Context, staffID int64, start, end time.Time) (bool, error) {
	found, _ := s.FindOverlapping(ctx, staffID, start, end)
	return len(found) > 0, nil
}

func (s *Storage) Create(_ context.Context, sc *domain.Schedule) (*domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.staff[sc.StaffID]; !ok {
		return nil, scheduleRepo.ErrStaffNotFound
	}
	if sc.Kind == domain.KindBooking {
		for _, existing := range s.schedules {
			if existing.Kind == domain.KindBooking && existing.StaffID == sc.StaffID && existing.Start.Equal(sc.Start) {
				return nil, scheduleRepo.ErrDuplicate
			}
		}
	}

	c := *sc
	c.ID = s.id()
	c.CreatedAt = time.Now()
	s.schedules[c.ID] = &c

	out := c
	return &out, nil
}

func (s *Storage) GetSchedule(_ context.Context, id int64) (*domain.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sc, ok := s.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	c := *sc
	return &c, nil
}

func (s *Storage) Update(_ context.Context, id int64, start, end time.Time, name string) (*domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[id]
	if !ok {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	if sc.Kind == domain.KindBooking {
		for _, existing := range s.schedules {
			if existing.ID != id && existing.Kind == domain.KindBooking &&
				existing.StaffID == sc.StaffID && existing.Start.Equal(start) {
				return nil, scheduleRepo.ErrDuplicate
			}
		}
	}
	sc.Start, sc.End, sc.Name = start, end, name
	c := *sc
	return &c, nil
}

func (s *Storage) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.schedules[id]; !ok {
		return scheduleRepo.ErrScheduleNotFound
	}
	delete(s.schedules, id)
	return nil
}

func (s *Storage) FindByStaffOrderedByStart(_ context.Context, staffID int64, from time.Time) ([]*domain.Schedule, error) {
	return s.filterSchedules(func(sc *domain.Schedule) bool {
		return sc.StaffID == staffID && !sc.Start.Before(from)
	}), nil
}

func (s *Storage) FindByUserFrom(_ context.Context, userID int64, from time.Time) ([]*domain.Schedule, error) {
	s.mu.RLock()
	owned := make(map[int64]bool)
	for _, st := range s.staff {
		if st.UserID == userID {
			owned[st.ID] = true
		}
	}
	s.mu.RUnlock()

	return s.filterSchedules(func(sc *domain.Schedule) bool {
		return owned[sc.StaffID] && !sc.Start.Before(from)
	}), nil
}

// ScheduleCount количество расписаний сотрудника
func (s *Storage) ScheduleCount(staffID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, sc := range s.schedules {
		if sc.StaffID == staffID {
			n++
		}
	}
	return n
}

func (s *Storage) filterSchedules(keep func(*domain.Schedule) bool) []*domain.Schedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Schedule, 0)
	for _, sc := range s.schedules {
		if keep(sc) {
			c := *sc
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Start.Equal(out[j].Start) {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
