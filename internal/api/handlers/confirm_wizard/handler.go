package confirm_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

const (
	msgMissingToken     = "токен сессии обязателен"
	msgDraftNotFound    = "сессия не найдена или истекла"
	msgAlreadySubmitted = "запись уже создана, начните новую сессию"
	msgAuthRequired     = "требуется вход, выбор сохранен"
	msgCustomerNotFound = "профиль клиента не найден"
	msgSlotTaken        = "выбранное время уже занято"
	msgInvalidSchedule  = "выбранные дата и время недоступны"
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

// Handle POST /api/v1/wizard/{token}/confirm
// Аутентификация опциональна: без нее сессия приостанавливается и ждет входа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]
	if token == "" {
		h.logger.Warn("POST /wizard/{token}/confirm - Missing token")
		handlers.RespondBadRequest(w, msgMissingToken)
		return
	}

	// Пустой customerID означает неаутентифицированный вызов
	customerID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Confirm(r.Context(), &bookingWizard.ConfirmRequest{
		Token:      token,
		CustomerID: customerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingWizard.ErrDraftNotFound):
			h.logger.Warn("POST /wizard/{token}/confirm - Draft not found: token=%s", token)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, bookingWizard.ErrAlreadySubmitted):
			h.logger.Warn("POST /wizard/{token}/confirm - Already submitted: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgAlreadySubmitted)

		case errors.Is(err, bookingWizard.ErrAuthenticationRequired):
			h.logger.Info("POST /wizard/{token}/confirm - Suspended for authentication: token=%s", token)
			handlers.RespondUnauthorized(w, msgAuthRequired)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /wizard/{token}/confirm - Customer not found: token=%s", token)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /wizard/{token}/confirm - Slot taken: token=%s", token)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrUnitClosed),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidTimeSlot),
			errors.Is(err, createBooking.ErrTimeInPast):
			h.logger.Warn("POST /wizard/{token}/confirm - Invalid schedule: token=%s, error=%v", token, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /wizard/{token}/confirm - Failed to confirm: token=%s, error=%v", token, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Незаполненный черновик возвращается с предупреждением без создания записи
	if result.Warning != "" {
		h.logger.Warn("POST /wizard/{token}/confirm - Incomplete draft: token=%s, step=%d", token, result.Step)
		handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
		return
	}

	h.logger.Info("POST /wizard/{token}/confirm - Booking confirmed: token=%s, appointment_id=%v",
		token, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
