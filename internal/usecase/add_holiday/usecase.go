package add_holiday

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
)

// UseCase use case добавления выходного (блокировки часа)
type UseCase struct {
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	clock        Clock
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(staffRepo StaffRepository, scheduleRepo ScheduleRepository, clock Clock, logger Logger) *UseCase {
	return &UseCase{
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		clock:        clock,
		logger:       logger,
	}
}

// Execute блокирует час [start, start+1h) без проверки пересечений.
// Доступно только самому сотруднику и суперпользователю.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Schedule, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}
	uc.logger.Info("AddHoliday: user=%d, staff=%d, slot=%04d-%02d-%02d %02d:00",
		req.Principal.UserID, req.StaffID, req.Year, req.Month, req.Day, req.Hour)

	// 1. Получаем сотрудника
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("AddHoliday: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("AddHoliday: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 2. Проверяем права
	if !domain.CanViewOrEditStaff(req.Principal, staff) {
		uc.logger.Warn("AddHoliday: user=%d is not allowed to edit staff=%d", req.Principal.UserID, staff.ID)
		return nil, ErrForbidden
	}

	// 3. Вычисляем слот
	start, err := uc.clock.DateTime(req.Year, req.Month, req.Day, req.Hour)
	if err != nil {
		uc.logger.Warn("AddHoliday: invalid slot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Создаем блокировку
	created, err := uc.scheduleRepo.Create(ctx, &domain.Schedule{
		StaffID: staff.ID,
		Start:   start,
		End:     start.Add(domain.SlotDuration),
		Name:    domain.HolidayName,
		Kind:    domain.KindHoliday,
	})
	if err != nil {
		uc.logger.Error("AddHoliday: failed to create schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("AddHoliday: created schedule id=%d for staff=%d", created.ID, staff.ID)
	return created, nil
}
