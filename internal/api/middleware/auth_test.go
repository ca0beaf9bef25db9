package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
)

type stubParser struct{}

func (stubParser) ParseToken(raw string) (domain.Principal, error) {
	if raw == "good" {
		return domain.Principal{UserID: 7, IsSuperuser: true}, nil
	}
	return domain.Principal{}, errors.New("bad token")
}

func TestAuth(t *testing.T) {
	var got domain.Principal
	var seen bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, seen = GetPrincipal(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := Auth(stubParser{}, logger.NewNop())(next)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", wantStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = false
			req := httptest.NewRequest(http.MethodGet, "/api/v1/mypage", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				require.True(t, seen)
				assert.Equal(t, int64(7), got.UserID)
				assert.True(t, got.IsSuperuser)
			} else {
				assert.False(t, seen)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	var inner string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.NotEmpty(t, inner)
	assert.Equal(t, inner, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", inner)
}
