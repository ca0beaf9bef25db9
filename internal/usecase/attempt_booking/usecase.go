package attempt_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffBooking/pkg/metrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/txmanager"
)

// UseCase use case бронирования часа у сотрудника
type UseCase struct {
	staffRepo    StaffRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	clock        Clock
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffRepo StaffRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	clock Clock,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		staffRepo:    staffRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		clock:        clock,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет попытку бронирования.
// Проверка пересечения и вставка выполняются в одной сериализуемой транзакции,
// поэтому из двух одновременных попыток на один слот успешна ровно одна.
// Рабочие часы здесь не проверяются: их ограничивает только календарь.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	result, err := uc.execute(ctx, req)
	uc.metrics.IncBookingAttempt(outcome(err))
	return result, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AttemptBooking: validation failed: %v", err)
		return nil, err
	}
	uc.logger.Info("AttemptBooking: staff=%d, slot=%04d-%02d-%02d %02d:00",
		req.StaffID, req.Year, req.Month, req.Day, req.Hour)

	// 2. Вычисляем слот [start, start+1h) в локальной зоне
	start, err := uc.clock.DateTime(req.Year, req.Month, req.Day, req.Hour)
	if err != nil {
		uc.logger.Warn("AttemptBooking: invalid slot: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end := start.Add(domain.SlotDuration)

	var created *domain.Schedule

	// 3. Проверка и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем сотрудника (строка блокируется до конца транзакции)
		staff, err := uc.staffRepo.GetByID(txCtx, req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				return ErrStaffNotFound
			}
			return fmt.Errorf("%w: failed to get staff: %w", ErrInternal, err)
		}

		// 3.2. Повторно проверяем пересечение на момент записи
		exists, err := uc.scheduleRepo.ExistsOverlapping(txCtx, staff.ID, start, end)
		if err != nil {
			return fmt.Errorf("%w: failed to check overlap: %w", ErrInternal, err)
		}
		if exists {
			return ErrConflict
		}

		// 3.3. Создаем бронирование
		s, err := uc.scheduleRepo.Create(txCtx, &domain.Schedule{
			StaffID: staff.ID,
			Start:   start,
			End:     end,
			Name:    req.BookerName,
			Kind:    domain.KindBooking,
		})
		if err != nil {
			switch {
			case errors.Is(err, scheduleRepo.ErrDuplicate):
				return ErrConflict
			case errors.Is(err, scheduleRepo.ErrStaffNotFound):
				return ErrStaffNotFound
			}
			return fmt.Errorf("%w: failed to create schedule: %w", ErrInternal, err)
		}

		created = s
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			uc.logger.Warn("AttemptBooking: slot %s already booked for staff=%d",
				start.Format(domain.DateTimeFormat), req.StaffID)
			return nil, ErrConflict
		case errors.Is(err, txmanager.ErrRetriesExhausted):
			// конкурирующие транзакции так и не дали зафиксировать запись
			uc.logger.Warn("AttemptBooking: serialization retries exhausted for staff=%d: %v", req.StaffID, err)
			return nil, ErrConflict
		case errors.Is(err, ErrStaffNotFound):
			uc.logger.Warn("AttemptBooking: staff id=%d not found", req.StaffID)
			return nil, ErrStaffNotFound
		default:
			uc.logger.Error("AttemptBooking: failed for staff=%d: %v", req.StaffID, err)
			if errors.Is(err, ErrInternal) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("AttemptBooking: created schedule id=%d for staff=%d at %s",
		created.ID, created.StaffID, start.Format(domain.DateTimeFormat))

	return &Response{
		ID:        created.ID,
		StaffID:   created.StaffID,
		Start:     start,
		End:       end,
		Name:      created.Name,
		CreatedAt: created.CreatedAt,
	}, nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.BookingResultCreated
	case errors.Is(err, ErrConflict):
		return metrics.BookingResultConflict
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrStaffNotFound):
		return metrics.BookingResultInvalid
	default:
		return metrics.BookingResultError
	}
}
