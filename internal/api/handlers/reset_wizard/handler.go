package reset_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

const (
	msgMissingToken  = "токен сессии обязателен"
	msgDraftNotFound = "сессия не найдена или истекла"
)

type Handler struct {
	useCase BookingWizardUseCase
	logger  Logger
}

func NewHandler(useCase BookingWizardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{token}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("POST /wizard/{token}/reset - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.useCase.Reset(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrDraftNotFound):
			h.logger.Warn("POST /wizard/{token}/reset - Draft not found: token=%s", token)
			handlers.RespondNotFound(w, msgDraftNotFound)

		default:
			h.logger.Error("POST /wizard/{token}/reset - Failed to reset: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{token}/reset - Session reset: token=%s", token)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
