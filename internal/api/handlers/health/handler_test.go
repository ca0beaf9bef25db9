package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
)

func TestHandler_Ready(t *testing.T) {
	ok := Dependency{Name: "postgres", Ping: func(context.Context) error { return nil }}
	down := Dependency{Name: "redis", Ping: func(context.Context) error { return errors.New("dial tcp: refused") }}

	rec := httptest.NewRecorder()
	NewHandler(logger.NewNop(), ok).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(logger.NewNop(), ok, down).Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "redis not ready")

	rec = httptest.NewRecorder()
	NewHandler(logger.NewNop(), down).Live(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
