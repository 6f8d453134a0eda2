package sign_out

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/auth"
)

const (
	msgMissingToken = "отсутствует токен аутентификации"
	msgUnauthorized = "недействительный токен аутентификации"
	msgSignedOut    = "выход выполнен"
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

// Handle POST /api/v1/auth/signout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем токен из контекста (через middleware Auth)
	accessToken, ok := middleware.GetAccessToken(r.Context())
	if !ok {
		h.logger.Warn("POST /auth/signout - Missing access token")
		handlers.RespondUnauthorized(w, msgMissingToken)
		return
	}

	if err := h.service.SignOut(r.Context(), accessToken); err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthorized):
			h.logger.Warn("POST /auth/signout - Invalid token")
			handlers.RespondUnauthorized(w, msgUnauthorized)

		default:
			h.logger.Error("POST /auth/signout - Failed to sign out: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signout - User signed out")
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"message": msgSignedOut})
}
