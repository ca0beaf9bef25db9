package schedules

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StaffBooking/internal/service/access"
	"github.com/m04kA/SMC-StaffBooking/internal/service/schedules/models"
	"github.com/m04kA/SMC-StaffBooking/pkg/localtime"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
)

type fixture struct {
	svc     *Service
	storage *memory.Storage
	clock   *localtime.Clock
	owner   *domain.User
	other   *domain.User
	admin   *domain.User
	staff   *domain.Staff
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := localtime.NewFixed(loc, time.Date(2026, 10, 15, 8, 0, 0, 0, loc))

	storage := memory.New()
	store := storage.AddStore("Shibuya")
	owner := storage.AddUser("owner", "", false)
	other := storage.AddUser("other", "", false)
	admin := storage.AddUser("admin", "", true)
	staff := storage.AddStaff("Sato", store.ID, owner.ID)

	log := logger.NewNop()
	checker := access.NewChecker(storage.StaffRepo(), storage.Schedules(), storage.Users(), log)
	svc := NewService(checker, storage.StaffRepo(), storage.Schedules(), clock, log)

	return &fixture{svc: svc, storage: storage, clock: clock, owner: owner, other: other, admin: admin, staff: staff}
}

func (f *fixture) addSchedule(t *testing.T, day, hour int, name string, kind domain.ScheduleKind) *domain.Schedule {
	t.Helper()
	start, err := f.clock.DateTime(2026, 10, day, hour)
	require.NoError(t, err)
	sc, err := f.storage.Create(context.Background(), &domain.Schedule{
		StaffID: f.staff.ID,
		Start:   start,
		End:     start.Add(domain.SlotDuration),
		Name:    name,
		Kind:    kind,
	})
	require.NoError(t, err)
	return sc
}

func TestService_MyPage(t *testing.T) {
	f := newFixture(t)
	f.addSchedule(t, 14, 10, "past", domain.KindBooking)
	f.addSchedule(t, 16, 9, "later", domain.KindBooking)
	f.addSchedule(t, 15, 11, "sooner", domain.KindBooking)

	page, err := f.svc.MyPage(context.Background(), f.owner.Principal())
	require.NoError(t, err)

	require.Len(t, page.Staff, 1)
	assert.Equal(t, "Sato", page.Staff[0].Name)
	require.Len(t, page.Schedules, 2)
	assert.Equal(t, "sooner", page.Schedules[0].Name)
	assert.Equal(t, "2026-10-15 11:00", page.Schedules[0].Start)
	assert.Equal(t, "later", page.Schedules[1].Name)
}

func TestService_UserPage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.UserPage(ctx, f.owner.Principal(), f.owner.ID)
	assert.NoError(t, err)

	_, err = f.svc.UserPage(ctx, f.admin.Principal(), f.owner.ID)
	assert.NoError(t, err)

	_, err = f.svc.UserPage(ctx, f.other.Principal(), f.owner.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.UserPage(ctx, f.other.Principal(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc := f.addSchedule(t, 16, 10, "Test", domain.KindBooking)
	f.addSchedule(t, 16, 12, "Taken", domain.KindBooking)

	tests := []struct {
		name      string
		principal domain.Principal
		req       *models.UpdateScheduleRequest
		wantErr   error
	}{
		{
			name:      "end before start",
			principal: f.owner.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "2026-10-16 11:00", End: "2026-10-16 10:00", Name: "x"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "empty name",
			principal: f.owner.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "2026-10-16 11:00", End: "2026-10-16 12:00", Name: "  "},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "bad format",
			principal: f.owner.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "16.10.2026", End: "2026-10-16 12:00", Name: "x"},
			wantErr:   ErrInvalidInput,
		},
		{
			name:      "unrelated user",
			principal: f.other.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "2026-10-16 11:00", End: "2026-10-16 12:00", Name: "x"},
			wantErr:   ErrForbidden,
		},
		{
			name:      "collides with booking",
			principal: f.owner.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "2026-10-16 12:00", End: "2026-10-16 13:00", Name: "x"},
			wantErr:   ErrConflict,
		},
		{
			name:      "degenerate interval by superuser",
			principal: f.admin.Principal(),
			req:       &models.UpdateScheduleRequest{Start: "2026-10-16 11:00", End: "2026-10-16 11:00", Name: "Moved"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := f.svc.Update(ctx, tt.principal, sc.ID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Moved", resp.Name)
			assert.Equal(t, "2026-10-16 11:00", resp.Start)
			assert.Equal(t, "2026-10-16 11:00", resp.End)
		})
	}
}

func TestService_Update_LookupBeforeValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc := f.addSchedule(t, 16, 10, "Test", domain.KindBooking)
	bad := &models.UpdateScheduleRequest{Start: "bad", End: "bad", Name: ""}

	_, err := f.svc.Update(ctx, f.owner.Principal(), 9999, bad)
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	_, err = f.svc.Update(ctx, f.other.Principal(), sc.ID, bad)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Update(ctx, f.owner.Principal(), sc.ID, bad)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sc := f.addSchedule(t, 16, 10, "Test", domain.KindBooking)

	err := f.svc.Delete(ctx, f.other.Principal(), sc.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, f.svc.Delete(ctx, f.owner.Principal(), sc.ID))

	remaining, err := f.storage.FindByStaffOrderedByStart(ctx, f.staff.ID, f.clock.Now())
	require.NoError(t, err)
	assert.Empty(t, remaining)

	err = f.svc.Delete(ctx, f.owner.Principal(), sc.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestService_Get(t *testing.T) {
	f := newFixture(t)
	sc := f.addSchedule(t, 16, 10, domain.HolidayName, domain.KindHoliday)

	resp, err := f.svc.Get(context.Background(), f.owner.Principal(), sc.ID)
	require.NoError(t, err)
	assert.Equal(t, "holiday", resp.Kind)
	assert.True(t, resp.Holiday)
	assert.Equal(t, "2026-10-16 11:00", resp.End)
}

func TestService_ExportXLSX(t *testing.T) {
	f := newFixture(t)
	f.addSchedule(t, 16, 10, "Test", domain.KindBooking)
	f.addSchedule(t, 17, 9, domain.HolidayName, domain.KindHoliday)

	var buf bytes.Buffer
	require.NoError(t, f.svc.ExportXLSX(context.Background(), f.owner.Principal(), f.staff.ID, &buf))

	book, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows("Sato")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, exportColumns, rows[0])
	assert.Equal(t, []string{"2026-10-16", "10:00", "11:00", "Test", "booking"}, rows[1][1:])
	assert.Equal(t, domain.HolidayName, rows[2][4])

	err = f.svc.ExportXLSX(context.Background(), f.other.Principal(), f.staff.ID, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrForbidden)

	err = f.svc.ExportXLSX(context.Background(), f.owner.Principal(), 9999, &bytes.Buffer{})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}
