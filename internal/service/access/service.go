package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
	userRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/user"
)

// Checker проверяет права пользователя на ресурсы сотрудников.
// Сначала ищется сущность (ErrXNotFound), затем применяется предикат (ErrForbidden).
type Checker struct {
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	userRepo     UserRepository
	logger       Logger
}

// NewChecker создает новый экземпляр проверки доступа
func NewChecker(staffRepo StaffRepository, scheduleRepo ScheduleRepository, userRepo UserRepository, logger Logger) *Checker {
	return &Checker{
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// CheckStaff возвращает сотрудника, если principal может видеть и менять его ресурсы
func (c *Checker) CheckStaff(ctx context.Context, p domain.Principal, staffID int64) (*domain.Staff, error) {
	staff, err := c.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		c.logger.Error("CheckStaff: failed to get staff id=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: CheckStaff - repository error: %v", ErrInternal, err)
	}

	if !domain.CanViewOrEditStaff(p, staff) {
		c.logger.Warn("CheckStaff: user=%d denied for staff=%d", p.UserID, staffID)
		return nil, ErrForbidden
	}

	return staff, nil
}

// CheckSchedule возвращает расписание и его сотрудника, если principal может их видеть и менять
func (c *Checker) CheckSchedule(ctx context.Context, p domain.Principal, scheduleID int64) (*domain.Schedule, *domain.Staff, error) {
	schedule, err := c.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return nil, nil, ErrScheduleNotFound
		}
		c.logger.Error("CheckSchedule: failed to get schedule id=%d: %v", scheduleID, err)
		return nil, nil, fmt.Errorf("%w: CheckSchedule - repository error: %v", ErrInternal, err)
	}

	owner, err := c.staffRepo.GetByID(ctx, schedule.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			// расписание удаляется каскадно вместе с сотрудником
			return nil, nil, ErrScheduleNotFound
		}
		c.logger.Error("CheckSchedule: failed to get staff id=%d: %v", schedule.StaffID, err)
		return nil, nil, fmt.Errorf("%w: CheckSchedule - repository error: %v", ErrInternal, err)
	}

	if !domain.CanViewOrEditSchedule(p, owner) {
		c.logger.Warn("CheckSchedule: user=%d denied for schedule=%d", p.UserID, scheduleID)
		return nil, nil, ErrForbidden
	}

	return schedule, owner, nil
}

// CheckUserPage возвращает пользователя, если principal может видеть его страницу
func (c *Checker) CheckUserPage(ctx context.Context, p domain.Principal, userID int64) (*domain.User, error) {
	user, err := c.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		c.logger.Error("CheckUserPage: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: CheckUserPage - repository error: %v", ErrInternal, err)
	}

	if !domain.CanViewUserPage(p, user.ID) {
		c.logger.Warn("CheckUserPage: user=%d denied for user page=%d", p.UserID, userID)
		return nil, ErrForbidden
	}

	return user, nil
}
