package create_booking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/internal/infra/storage/memory"
	attemptBooking "github.com/m04kA/SMC-StaffBooking/internal/usecase/attempt_booking"
	"github.com/m04kA/SMC-StaffBooking/pkg/localtime"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
	"github.com/m04kA/SMC-StaffBooking/pkg/metrics"
)

func newHandler(t *testing.T) (*Handler, *memory.Storage, *domain.Staff) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	clock := localtime.NewFixed(loc, time.Date(2026, 10, 15, 8, 0, 0, 0, loc))

	storage := memory.New()
	store := storage.AddStore("Ginza")
	user := storage.AddUser("staff", "", false)
	staff := storage.AddStaff("Suzuki", store.ID, user.ID)

	log := logger.NewNop()
	uc := attemptBooking.NewUseCase(
		storage.StaffRepo(),
		storage.Schedules(),
		memory.NewTxManager(),
		clock,
		metrics.NewWithRegistry("test", prometheus.NewRegistry()),
		log,
	)
	return NewHandler(uc, log), storage, staff
}

func call(h *Handler, staffID, hour string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/staff/"+staffID+"/booking/2026/10/16/"+hour, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{
		"staffId": staffID,
		"year":    "2026",
		"month":   "10",
		"day":     "16",
		"hour":    hour,
	})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) BookingResponse {
	t.Helper()
	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandler_CreatedThenConflict(t *testing.T) {
	h, storage, staff := newHandler(t)
	id := strconv.FormatInt(staff.ID, 10)

	rec := call(h, id, "9", `{"name":"Test"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decode(t, rec)
	assert.True(t, created.Booked)
	require.NotNil(t, created.Schedule)
	assert.Equal(t, "2026-10-16 09:00", created.Schedule.Start)
	assert.Equal(t, "2026-10-16 10:00", created.Schedule.End)
	assert.Equal(t, "Test", created.Schedule.Name)

	rec = call(h, id, "9", `{"name":"Late"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	conflict := decode(t, rec)
	assert.False(t, conflict.Booked)
	assert.Equal(t, domain.ConflictMessage, conflict.Message)
	assert.Nil(t, conflict.Schedule)

	assert.Equal(t, 1, storage.ScheduleCount(staff.ID))
}

func TestHandler_ConcurrentRequests(t *testing.T) {
	h, storage, staff := newHandler(t)
	id := strconv.FormatInt(staff.ID, 10)

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = call(h, id, "11", `{"name":"racer"}`).Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, c := range codes {
		if c == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusOK, c)
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, storage.ScheduleCount(staff.ID))
}

func TestHandler_BadRequests(t *testing.T) {
	h, _, staff := newHandler(t)
	id := strconv.FormatInt(staff.ID, 10)

	tests := []struct {
		name       string
		staffID    string
		hour       string
		body       string
		wantStatus int
	}{
		{name: "non numeric staff", staffID: "abc", hour: "9", body: `{"name":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "unknown staff", staffID: "999", hour: "9", body: `{"name":"x"}`, wantStatus: http.StatusNotFound},
		{name: "hour 24", staffID: id, hour: "24", body: `{"name":"x"}`, wantStatus: http.StatusBadRequest},
		{name: "empty name", staffID: id, hour: "9", body: `{"name":""}`, wantStatus: http.StatusBadRequest},
		{name: "blank name", staffID: id, hour: "9", body: `{"name":"   "}`, wantStatus: http.StatusBadRequest},
		{name: "broken json", staffID: id, hour: "9", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "unknown field", staffID: id, hour: "9", body: `{"name":"x","extra":1}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(h, tt.staffID, tt.hour, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
