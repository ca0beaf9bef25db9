package list_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/service/directory"
)

const (
	msgInvalidStoreID = "некорректный ID магазина"
	msgStoreNotFound  = "магазин не найден"
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

// Handle GET /api/v1/stores/{storeId}/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	storeID, err := handlers.PathInt64(r, "storeId")
	if err != nil {
		h.logger.Warn("GET /stores/{id}/staff - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	list, err := h.service.ListStaff(r.Context(), storeID)
	if err != nil {
		switch {
		case errors.Is(err, directory.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/staff - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)
		default:
			h.logger.Error("GET /stores/{id}/staff - Failed to list staff: store_id=%d, error=%v", storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, list)
}
