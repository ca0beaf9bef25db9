package list_stores

import (
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
)

type Handler struct {
	service DirectoryService
	logger  Logger
}

func NewHandler(service DirectoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stores, err := h.service.ListStores(r.Context())
	if err != nil {
		h.logger.Error("GET /stores - Failed to list stores: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, stores)
}
