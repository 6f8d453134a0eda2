package get_profile

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/auth"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgProfileNotFound = "профиль не найден"
)

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

// Handle GET /api/v1/auth/profile
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	identityID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /auth/profile - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), identityID)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrProfileNotFound):
			h.logger.Warn("GET /auth/profile - Profile not found: identity_id=%s", identityID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("GET /auth/profile - Failed to get profile: identity_id=%s, error=%v", identityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /auth/profile - Profile retrieved: identity_id=%s", identityID)
	handlers.RespondJSON(w, http.StatusOK, profile)
}
