package attempt_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StaffBooking/pkg/localtime"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
	"github.com/m04kA/SMC-StaffBooking/pkg/metrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/txmanager"
)

type recordingMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *recordingMetrics) IncBookingAttempt(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.results == nil {
		m.results = make(map[string]int)
	}
	m.results[result]++
}

type fixture struct {
	storage *memory.Storage
	staff   *domain.Staff
	clock   *localtime.Clock
	metrics *recordingMetrics
	uc      *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := localtime.NewFixed(loc, time.Date(2026, 10, 16, 8, 0, 0, 0, loc))

	s := memory.New()
	store := s.AddStore("Shibuya")
	u := s.AddUser("tanaka", "", false)
	staff := s.AddStaff("Tanaka", store.ID, u.ID)

	m := &recordingMetrics{}
	uc := NewUseCase(s.StaffRepo(), s.Schedules(), memory.NewTxManager(), clock, m, logger.NewNop())
	return &fixture{storage: s, staff: staff, clock: clock, metrics: m, uc: uc}
}

func (f *fixture) request(name string) *Request {
	return &Request{StaffID: f.staff.ID, Year: 2026, Month: 10, Day: 17, Hour: 10, BookerName: name}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), f.request("  Sato  "))
	require.NoError(t, err)

	wantStart, _ := f.clock.DateTime(2026, 10, 17, 10)
	assert.True(t, resp.Start.Equal(wantStart))
	assert.True(t, resp.End.Equal(wantStart.Add(time.Hour)))
	assert.Equal(t, "Sato", resp.Name)

	stored, err := f.storage.Schedules().FindByStaffOrderedByStart(context.Background(), f.staff.ID, time.Time{})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Start.Equal(wantStart))
	assert.True(t, stored[0].End.Equal(wantStart.Add(time.Hour)))
	assert.Equal(t, domain.KindBooking, stored[0].Kind)
	assert.Equal(t, 1, f.metrics.results[metrics.BookingResultCreated])
}

func TestExecute_OccupiedSlotConflicts(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), f.request("Sato"))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), f.request("Suzuki"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, f.storage.ScheduleCount(f.staff.ID))
	assert.Equal(t, 1, f.metrics.results[metrics.BookingResultConflict])
}

func TestExecute_OverlappingHolidayConflicts(t *testing.T) {
	f := newFixture(t)
	dayStart, _ := f.clock.Date(2026, 10, 17)

	// блок на весь день пересекается со слотом 10:00
	_, err := f.storage.Schedules().Create(context.Background(), &domain.Schedule{
		StaffID: f.staff.ID,
		Start:   dayStart,
		End:     dayStart.AddDate(0, 0, 1),
		Name:    domain.HolidayName,
		Kind:    domain.KindHoliday,
	})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), f.request("Sato"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_ConcurrentAttemptsExactlyOneWins(t *testing.T) {
	for i := 0; i < 20; i++ {
		f := newFixture(t)

		var (
			wg      sync.WaitGroup
			ready   = make(chan struct{})
			results = make([]error, 2)
		)
		for g := 0; g < 2; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				<-ready
				_, results[g] = f.uc.Execute(context.Background(), f.request(fmt.Sprintf("client-%d", g)))
			}(g)
		}
		close(ready)
		wg.Wait()

		successes, conflicts := 0, 0
		for _, err := range results {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, conflicts)
		assert.Equal(t, 1, f.storage.ScheduleCount(f.staff.ID))
	}
}

// staleRepository не видит существующих записей, как транзакция без изоляции
type staleRepository struct {
	memory.ScheduleRepository
}

func (staleRepository) ExistsOverlapping(context.Context, int64, time.Time, time.Time) (bool, error) {
	return false, nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestExecute_UniqueBackstopMapsToConflict(t *testing.T) {
	f := newFixture(t)
	uc := NewUseCase(f.storage.StaffRepo(), staleRepository{f.storage.Schedules()}, passthroughTx{}, f.clock, f.metrics, logger.NewNop())

	_, err := uc.Execute(context.Background(), f.request("Sato"))
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), f.request("Suzuki"))
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, f.storage.ScheduleCount(f.staff.ID))
}

type exhaustedTx struct{}

func (exhaustedTx) DoSerializable(context.Context, func(ctx context.Context) error) error {
	return fmt.Errorf("%w: could not serialize access", txmanager.ErrRetriesExhausted)
}

func TestExecute_RetriesExhaustedIsConflict(t *testing.T) {
	f := newFixture(t)
	uc := NewUseCase(f.storage.StaffRepo(), f.storage.Schedules(), exhaustedTx{}, f.clock, f.metrics, logger.NewNop())

	_, err := uc.Execute(context.Background(), f.request("Sato"))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty name", mutate: func(r *Request) { r.BookerName = "   " }, wantErr: ErrInvalidInput},
		{name: "name too long", mutate: func(r *Request) { r.BookerName = strings.Repeat("a", 256) }, wantErr: ErrInvalidInput},
		{name: "month 13", mutate: func(r *Request) { r.Month = 13 }, wantErr: ErrInvalidInput},
		{name: "hour 24", mutate: func(r *Request) { r.Hour = 24 }, wantErr: ErrInvalidInput},
		{name: "unknown staff", mutate: func(r *Request) { r.StaffID = 9999 }, wantErr: ErrStaffNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("Sato")
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Zero(t, f.storage.ScheduleCount(f.staff.ID))
	assert.Equal(t, 5, f.metrics.results[metrics.BookingResultInvalid])
}

func TestExecute_OutsideBusinessHoursAccepted(t *testing.T) {
	f := newFixture(t)
	req := f.request("Night owl")
	req.Hour = 23

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// конец слота переходит на следующий день
	assert.Equal(t, 18, resp.End.In(f.clock.Location()).Day())
	assert.Equal(t, 0, resp.End.In(f.clock.Location()).Hour())
}

func TestExecute_NilRequest(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), nil)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 1, f.metrics.results[metrics.BookingResultInvalid])
}

func TestExecute_SkippedDSTHourRejected(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	clock := localtime.NewFixed(loc, time.Date(2026, 3, 1, 8, 0, 0, 0, loc))

	s := memory.New()
	store := s.AddStore("Manhattan")
	u := s.AddUser("smith", "", false)
	staff := s.AddStaff("Smith", store.ID, u.ID)
	uc := NewUseCase(s.StaffRepo(), s.Schedules(), memory.NewTxManager(), clock, &recordingMetrics{}, logger.NewNop())

	early, err := uc.Execute(context.Background(), &Request{StaffID: staff.ID, Year: 2026, Month: 3, Day: 8, Hour: 1, BookerName: "Early"})
	require.NoError(t, err)
	assert.Equal(t, 1, early.Start.In(loc).Hour())

	// 02:00 does not exist on 2026-03-08 in New York
	_, err = uc.Execute(context.Background(), &Request{StaffID: staff.ID, Year: 2026, Month: 3, Day: 8, Hour: 2, BookerName: "Gap"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, s.ScheduleCount(staff.ID))
}
