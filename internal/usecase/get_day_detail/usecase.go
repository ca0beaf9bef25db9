package get_day_detail

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
)

// UseCase use case получения расписания сотрудника на один день по часам
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

// Execute возвращает для каждого часа 9..17 список расписаний, начинающихся в этот час.
// Проверка прав доступа выполняется вызывающим.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.DayDetail, error) {
	// 1. Строим дату
	date, err := uc.clock.Date(req.Year, req.Month, req.Day)
	if err != nil {
		uc.logger.Warn("GetDayDetail: invalid date %d-%d-%d", req.Year, req.Month, req.Day)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	uc.logger.Info("GetDayDetail: staff=%d, date=%s", req.StaffID, date.Format(domain.DateFormat))

	// 2. Проверяем, что сотрудник существует
	if _, err := uc.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("GetDayDetail: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("GetDayDetail: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 3. Получаем расписания, пересекающиеся с днем
	schedules, err := uc.scheduleRepo.FindOverlapping(ctx, req.StaffID, date, uc.clock.NextDay(date))
	if err != nil {
		uc.logger.Error("GetDayDetail: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 4. Раскладываем по часам начала
	detail := &domain.DayDetail{
		StaffID: req.StaffID,
		Date:    date,
		Hours:   domain.VisibleHours(),
		Slots:   make(map[int][]*domain.Schedule),
	}
	for _, h := range detail.Hours {
		detail.Slots[h] = make([]*domain.Schedule, 0)
	}
	for _, s := range schedules {
		start := uc.clock.Local(s.Start)
		if !uc.clock.SameDate(start, date) || !domain.IsVisibleHour(start.Hour()) {
			continue
		}
		detail.Slots[start.Hour()] = append(detail.Slots[start.Hour()], s)
	}

	return detail, nil
}
