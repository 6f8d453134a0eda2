package start_wizard

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Start(r.Context())
	if err != nil {
		h.logger.Error("POST /wizard - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /wizard - Session started: token=%s", result.Token)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
