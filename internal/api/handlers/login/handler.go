package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/service/auth"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "укажите имя пользователя и пароль"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=150"`
	Password string `json:"password" validate:"required"`
}

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, handlers.ValidationMessage(msgMissingCredentials, err))
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials):
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, token)
}
