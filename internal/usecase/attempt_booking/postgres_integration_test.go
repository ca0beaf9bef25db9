//go:build integration

package attempt_booking

// Запуск: STAFFBOOKING_TEST_DSN=postgres://... go test -tags integration ./internal/usecase/attempt_booking/
// База пересоздается миграциями, используйте отдельную тестовую БД.

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/schedule"
	staffRepo "github.com/m04kA/SMC-StaffBooking/internal/infra/storage/staff"
	"github.com/m04kA/SMC-StaffBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/localtime"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
	"github.com/m04kA/SMC-StaffBooking/pkg/metrics"
	"github.com/m04kA/SMC-StaffBooking/pkg/txmanager"
)

const testDSNEnv = "STAFFBOOKING_TEST_DSN"

type pgFixture struct {
	db        *sql.DB
	schedules *scheduleRepo.Repository
	clock     *localtime.Clock
	staffID   int64
	metrics   *recordingMetrics
	uc        *UseCase
}

func applyMigration(t *testing.T, db *sql.DB, name string) {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", name))
	require.NoError(t, err)
	_, err = db.Exec(string(body))
	require.NoError(t, err)
}

func newPgFixture(t *testing.T) *pgFixture {
	t.Helper()

	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(20)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Ping())

	applyMigration(t, db, "001_init.down.sql")
	applyMigration(t, db, "001_init.up.sql")

	var userID, storeID, staffID int64
	require.NoError(t, db.QueryRow(`INSERT INTO users (username, password_hash) VALUES ('tanaka', '') RETURNING id`).Scan(&userID))
	require.NoError(t, db.QueryRow(`INSERT INTO stores (name) VALUES ('Shibuya') RETURNING id`).Scan(&storeID))
	require.NoError(t, db.QueryRow(`INSERT INTO staff (name, store_id, user_id) VALUES ('Tanaka', $1, $2) RETURNING id`, storeID, userID).Scan(&staffID))

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := localtime.NewFixed(loc, time.Date(2026, 10, 16, 8, 0, 0, 0, loc))

	wrapped := dbmetrics.Wrap(db, nil, "integration")
	schedules := scheduleRepo.NewRepository(wrapped)
	m := &recordingMetrics{}
	uc := NewUseCase(
		staffRepo.NewRepository(wrapped),
		schedules,
		txmanager.NewTransactionManager(wrapped, 5),
		clock,
		m,
		logger.NewNop(),
	)

	return &pgFixture{db: db, schedules: schedules, clock: clock, staffID: staffID, metrics: m, uc: uc}
}

func (f *pgFixture) count(t *testing.T) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow(`SELECT COUNT(*) FROM schedules WHERE staff_id = $1`, f.staffID).Scan(&n))
	return n
}

func TestPostgres_ConcurrentAttemptsExactlyOneWins(t *testing.T) {
	f := newPgFixture(t)
	const workers = 12

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		created   int
		conflicts int
		others    []error
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.uc.Execute(context.Background(), &Request{
				StaffID: f.staffID, Year: 2026, Month: 10, Day: 17, Hour: 10, BookerName: "Sato",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrConflict):
				conflicts++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, others)
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
	assert.Equal(t, 1, f.count(t))
	assert.Equal(t, 1, f.metrics.results[metrics.BookingResultCreated])
}

func TestPostgres_OverlappingHolidayConflicts(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	// выходной 09:30-10:30 пересекается со слотом 10:00
	holidayStart := time.Date(2026, 10, 17, 9, 30, 0, 0, f.clock.Location())
	_, err := f.schedules.Create(ctx, &domain.Schedule{
		StaffID: f.staffID,
		Start:   holidayStart,
		End:     holidayStart.Add(time.Hour),
		Name:    domain.HolidayName,
		Kind:    domain.KindHoliday,
	})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, &Request{StaffID: f.staffID, Year: 2026, Month: 10, Day: 17, Hour: 10, BookerName: "Sato"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = f.uc.Execute(ctx, &Request{StaffID: f.staffID, Year: 2026, Month: 10, Day: 17, Hour: 11, BookerName: "Sato"})
	assert.NoError(t, err)
}

func TestPostgres_UniqueIndexBackstop(t *testing.T) {
	f := newPgFixture(t)
	ctx := context.Background()

	start, err := f.clock.DateTime(2026, 10, 17, 14)
	require.NoError(t, err)
	booking := func(kind domain.ScheduleKind) error {
		_, err := f.schedules.Create(ctx, &domain.Schedule{
			StaffID: f.staffID,
			Start:   start,
			End:     start.Add(time.Hour),
			Name:    "direct",
			Kind:    kind,
		})
		return err
	}

	require.NoError(t, booking(domain.KindBooking))
	assert.ErrorIs(t, booking(domain.KindBooking), scheduleRepo.ErrDuplicate)
	// индекс частичный: выходные в тот же час допускаются
	assert.NoError(t, booking(domain.KindHoliday))
	assert.Equal(t, 2, f.count(t))
}

func TestPostgres_UnknownStaff(t *testing.T) {
	f := newPgFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{
		StaffID: f.staffID + 1000, Year: 2026, Month: 10, Day: 17, Hour: 10, BookerName: "Sato",
	})
	assert.ErrorIs(t, err, ErrStaffNotFound)
	assert.Zero(t, f.count(t))
}
