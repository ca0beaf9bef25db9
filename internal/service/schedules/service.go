package schedules

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-StaffBooking/internal/service/access"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
	"github.com/m04kA/SMC-StaffBooking/pkg/xlsxexport"
)

var exportColumns = []string{"ID", "Date", "Start", "End", "Name", "Kind"}

// Service сервис страницы сотрудника и управления расписаниями
type Service struct {
	access       AccessChecker
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	clock        Clock
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	access AccessChecker,
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	clock Clock,
	logger Logger,
) *Service {
	return &Service{
		access:       access,
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		clock:        clock,
		logger:       logger,
	}
}

// MyPage возвращает сотрудников текущего пользователя и их будущие расписания
func (s *Service) MyPage(ctx context.Context, p domain.Principal) (*models.MyPageResponse, error) {
	s.logger.Info("MyPage: fetching page for user=%d", p.UserID)
	return s.page(ctx, p.UserID)
}

// UserPage возвращает страницу другого пользователя.
// Доступно самому пользователю и суперпользователю.
func (s *Service) UserPage(ctx context.Context, p domain.Principal, userID int64) (*models.MyPageResponse, error) {
	s.logger.Info("UserPage: user=%d requests page of user=%d", p.UserID, userID)

	if _, err := s.access.CheckUserPage(ctx, p, userID); err != nil {
		return nil, s.mapAccessError("UserPage", err)
	}

	return s.page(ctx, userID)
}

func (s *Service) page(ctx context.Context, userID int64) (*models.MyPageResponse, error) {
	staff, err := s.staffRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("MyPage: failed to list staff for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyPage - list staff: %v", ErrInternal, err)
	}

	schedules, err := s.scheduleRepo.FindByUserFrom(ctx, userID, s.clock.Now())
	if err != nil {
		s.logger.Error("MyPage: failed to list schedules for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: MyPage - list schedules: %v", ErrInternal, err)
	}

	return &models.MyPageResponse{
		UserID:    userID,
		Staff:     models.FromDomainStaffList(staff),
		Schedules: models.FromDomainSchedules(schedules, s.clock.Location()),
	}, nil
}

// Get возвращает расписание, если пользователь может его видеть
func (s *Service) Get(ctx context.Context, p domain.Principal, scheduleID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: user=%d fetching schedule id=%d", p.UserID, scheduleID)

	schedule, _, err := s.access.CheckSchedule(ctx, p, scheduleID)
	if err != nil {
		return nil, s.mapAccessError("Get", err)
	}

	return models.FromDomainSchedule(schedule, s.clock.Location()), nil
}

// Update изменяет время и название расписания
func (s *Service) Update(ctx context.Context, p domain.Principal, scheduleID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: user=%d updating schedule id=%d", p.UserID, scheduleID)

	// 1. Проверка существования и прав
	if _, _, err := s.access.CheckSchedule(ctx, p, scheduleID); err != nil {
		return nil, s.mapAccessError("Update", err)
	}

	// 2. Валидация
	start, end, name, err := s.parseUpdate(req)
	if err != nil {
		s.logger.Warn("Update: invalid input for schedule id=%d: %v", scheduleID, err)
		return nil, err
	}

	// 3. Сохранение
	updated, err := s.scheduleRepo.Update(ctx, scheduleID, start, end, name)
	if err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
			return nil, ErrScheduleNotFound
		case errors.Is(err, scheduleRepo.ErrDuplicate):
			s.logger.Warn("Update: schedule id=%d collides with existing booking", scheduleID)
			return nil, ErrConflict
		}
		s.logger.Error("Update: failed to update schedule id=%d: %v", scheduleID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: schedule id=%d updated", scheduleID)
	return models.FromDomainSchedule(updated, s.clock.Location()), nil
}

func (s *Service) parseUpdate(req *models.UpdateScheduleRequest) (time.Time, time.Time, string, error) {
	if req == nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	start, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(req.Start), s.clock.Location())
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: start must be %s", ErrInvalidInput, domain.DateTimeFormat)
	}
	end, err := time.ParseInLocation(domain.DateTimeFormat, strings.TrimSpace(req.End), s.clock.Location())
	if err != nil {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: end must be %s", ErrInvalidInput, domain.DateTimeFormat)
	}
	// Вырожденный интервал start == end допустим
	if end.Before(start) {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: end is before start", ErrInvalidInput)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxScheduleNameLength {
		return time.Time{}, time.Time{}, "", fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	return start, end, name, nil
}

// Delete удаляет расписание
func (s *Service) Delete(ctx context.Context, p domain.Principal, scheduleID int64) error {
	s.logger.Info("Delete: user=%d deleting schedule id=%d", p.UserID, scheduleID)

	if _, _, err := s.access.CheckSchedule(ctx, p, scheduleID); err != nil {
		return s.mapAccessError("Delete", err)
	}

	if err := s.scheduleRepo.Delete(ctx, scheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: failed to delete schedule id=%d: %v", scheduleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: schedule id=%d deleted", scheduleID)
	return nil
}

// ExportXLSX пишет будущие расписания сотрудника в Excel книгу
func (s *Service) ExportXLSX(ctx context.Context, p domain.Principal, staffID int64, w io.Writer) error {
	s.logger.Info("ExportXLSX: user=%d exporting schedules of staff=%d", p.UserID, staffID)

	staff, err := s.access.CheckStaff(ctx, p, staffID)
	if err != nil {
		return s.mapAccessError("ExportXLSX", err)
	}

	list, err := s.scheduleRepo.FindByStaffOrderedByStart(ctx, staffID, s.clock.Now())
	if err != nil {
		s.logger.Error("ExportXLSX: failed to list schedules for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: ExportXLSX - list schedules: %v", ErrInternal, err)
	}

	book := xlsxexport.NewWorkbook(staff.Name)
	defer book.Close()

	if err := book.WriteHeader(exportColumns); err != nil {
		return fmt.Errorf("%w: ExportXLSX - write header: %v", ErrInternal, err)
	}
	for _, sc := range list {
		start := s.clock.Local(sc.Start)
		end := s.clock.Local(sc.End)
		row := []interface{}{
			sc.ID,
			start.Format(domain.DateFormat),
			start.Format(domain.TimeFormat),
			end.Format(domain.TimeFormat),
			sc.Name,
			string(sc.Kind),
		}
		if err := book.WriteRow(row); err != nil {
			return fmt.Errorf("%w: ExportXLSX - write row: %v", ErrInternal, err)
		}
	}

	if _, err := book.WriteTo(w); err != nil {
		s.logger.Error("ExportXLSX: failed to write workbook for staff=%d: %v", staffID, err)
		return fmt.Errorf("%w: ExportXLSX - write workbook: %v", ErrInternal, err)
	}

	s.logger.Info("ExportXLSX: exported %d schedules of staff=%d", len(list), staffID)
	return nil
}

// mapAccessError переводит ошибки проверки доступа в ошибки сервиса
func (s *Service) mapAccessError(op string, err error) error {
	switch {
	case errors.Is(err, access.ErrScheduleNotFound):
		return ErrScheduleNotFound
	case errors.Is(err, access.ErrStaffNotFound):
		return ErrStaffNotFound
	case errors.Is(err, access.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, access.ErrForbidden):
		return ErrForbidden
	}
	s.logger.Error("%s: access check failed: %v", op, err)
	return fmt.Errorf("%w: %s - access check: %v", ErrInternal, op, err)
}
