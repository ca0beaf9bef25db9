package build_week_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
)

// UseCase use case построения недельного календаря сотрудника
type UseCase struct {
	staffRepo      StaffRepository
	scheduleRepo   ScheduleRepository
	clock          Clock
	publicHolidays []string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	clock Clock,
	publicHolidays []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:      staffRepo,
		scheduleRepo:   scheduleRepo,
		clock:          clock,
		publicHolidays: publicHolidays,
		logger:         logger,
	}
}

// Execute строит сетку 7 дней x часы 9..17, начиная с базовой даты.
// Проверка прав доступа (для "моего календаря") выполняется вызывающим до вызова.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildWeekGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем базовую дату
	today := uc.clock.Today()
	baseDate := today
	if req.BaseDate != nil {
		d, err := uc.clock.Date(req.BaseDate.Year, req.BaseDate.Month, req.BaseDate.Day)
		if err != nil {
			uc.logger.Warn("BuildWeekGrid: invalid base date %d-%d-%d", req.BaseDate.Year, req.BaseDate.Month, req.BaseDate.Day)
			return nil, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		baseDate = d
	}

	uc.logger.Info("BuildWeekGrid: staff=%d, base_date=%s", req.StaffID, baseDate.Format(domain.DateFormat))

	// 3. Проверяем, что сотрудник существует
	staff, err := uc.staffRepo.GetByID(ctx, req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("BuildWeekGrid: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("BuildWeekGrid: failed to get staff id=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	// 4. Формируем 7 последовательных дат
	days := make([]time.Time, domain.DaysInWeek)
	for i := range days {
		days[i] = uc.clock.AddDays(baseDate, i)
	}
	grid := domain.NewWeekGrid(staff.ID, days)

	// 5. Получаем расписания, пересекающиеся с окном [начало первого дня, начало дня после последнего)
	windowStart := grid.FirstDay()
	windowEnd := uc.clock.AddDays(grid.LastDay(), 1)

	schedules, err := uc.scheduleRepo.FindOverlapping(ctx, staff.ID, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("BuildWeekGrid: failed to get schedules for staff id=%d: %v", staff.ID, err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 6. Отмечаем занятые ячейки. Расписания вне видимых часов и дат игнорируются.
	for _, s := range schedules {
		grid.Mark(s.Start)
	}

	grid.PreviousWeekStart = uc.clock.AddDays(grid.FirstDay(), -domain.DaysInWeek)
	grid.NextWeekStart = uc.clock.AddDays(grid.LastDay(), 1)
	grid.Today = today
	grid.PublicHolidays = append([]string(nil), uc.publicHolidays...)

	return &Response{Staff: staff, Grid: grid}, nil
}
