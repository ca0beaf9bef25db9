package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
)

const pingTimeout = time.Second

// Pinger проверка доступности зависимости
type Pinger func(ctx context.Context) error

// Dependency именованная зависимость для проверки готовности
type Dependency struct {
	Name string
	Ping Pinger
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	deps   []Dependency
	logger Logger
}

func NewHandler(logger Logger, deps ...Dependency) *Handler {
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}

// Live GET /health
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready GET /ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for _, dep := range h.deps {
		if err := dep.Ping(ctx); err != nil {
			h.logger.Warn("GET /ready - %s not ready: %v", dep.Name, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, dep.Name+" not ready")
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
