package next_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

const (
	msgMissingToken     = "токен сессии обязателен"
	msgDraftNotFound    = "сессия не найдена или истекла"
	msgAlreadySubmitted = "запись уже создана, начните новую сессию"
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

// Handle POST /api/v1/wizard/{token}/next
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("POST /wizard/{token}/next - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	result, err := h.useCase.Next(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrDraftNotFound):
			h.logger.Warn("POST /wizard/{token}/next - Draft not found: token=%s", token)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, bookingWizard.ErrAlreadySubmitted):
			h.logger.Warn("POST /wizard/{token}/next - Already submitted: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		default:
			h.logger.Error("POST /wizard/{token}/next - Failed to advance: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{token}/next - Session advanced: token=%s, step=%d", token, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
