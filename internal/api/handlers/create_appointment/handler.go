package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidBody      = "некорректное тело запроса"
	msgInvalidDateTime  = "некорректный формат даты или времени"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgUnitNotFound     = "барбершоп не найден"
	msgServiceNotFound  = "услуга не найдена в барбершопе"
	msgBarberNotFound   = "барбер не найден в барбершопе"
	msgCustomerNotFound = "профиль клиента не найден"
	msgSlotTaken        = "выбранное время уже занято"
	msgInvalidSchedule  = "выбранные дата и время недоступны"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	customerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(customerID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date or time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBody)

		case errors.Is(err, createBooking.ErrUnitNotFound):
			h.logger.Warn("POST /appointments - Unit not found: unit_id=%d", req.UnitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: unit_id=%d, service_id=%d",
				req.UnitID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /appointments - Barber not found: unit_id=%d, barber_id=%d",
				req.UnitID, req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /appointments - Customer not found: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: barber_id=%d, date=%s, time=%s",
				req.BarberID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createBooking.ErrUnitClosed),
			errors.Is(err, createBooking.ErrInvalidDate),
			errors.Is(err, createBooking.ErrInvalidTimeSlot),
			errors.Is(err, createBooking.ErrTimeInPast):
			h.logger.Warn("POST /appointments - Invalid schedule: date=%s, time=%s, error=%v",
				req.Date, req.StartTime, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, customer_id=%s",
		result.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
