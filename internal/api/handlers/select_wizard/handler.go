package select_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

const (
	msgMissingToken     = "токен сессии обязателен"
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidDateTime  = "некорректный формат даты или времени"
	msgInvalidSelection = "должно быть заполнено ровно одно поле выбора"
	msgDraftNotFound    = "сессия не найдена или истекла"
	msgUnitNotFound     = "барбершоп не найден"
	msgServiceNotFound  = "услуга не найдена в барбершопе"
	msgBarberNotFound   = "барбер не найден в барбершопе"
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

// Handle POST /api/v1/wizard/{token}/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("POST /wizard/{token}/select - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	var req SelectWizardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{token}/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(token)
	if err != nil {
		h.logger.Warn("POST /wizard/{token}/select - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Select(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrInvalidInput):
			h.logger.Warn("POST /wizard/{token}/select - Invalid selection: token=%s, error=%v", token, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		case errors.Is(err, bookingWizard.ErrDraftNotFound):
			h.logger.Warn("POST /wizard/{token}/select - Draft not found: token=%s", token)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, bookingWizard.ErrUnitNotFound):
			h.logger.Warn("POST /wizard/{token}/select - Unit not found: token=%s", token)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, bookingWizard.ErrServiceNotFound):
			h.logger.Warn("POST /wizard/{token}/select - Service not found: token=%s", token)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, bookingWizard.ErrBarberNotFound):
			h.logger.Warn("POST /wizard/{token}/select - Barber not found: token=%s", token)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, bookingWizard.ErrAlreadySubmitted):
			h.logger.Warn("POST /wizard/{token}/select - Already submitted: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		default:
			h.logger.Error("POST /wizard/{token}/select - Failed to apply selection: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{token}/select - Selection applied: token=%s, step=%d", token, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
