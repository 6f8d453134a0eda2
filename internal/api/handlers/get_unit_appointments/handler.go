package get_unit_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

const (
	msgInvalidUnitID = "некорректный ID барбершопа"
	msgMissingUserID = "отсутствует ID пользователя"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/appointments
// Query params: date (required, YYYY-MM-DD), includeInactive (optional, bool)
// Доступно только сотрудникам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id}/appointments - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /units/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /units/{id}/appointments - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /units/{id}/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// По умолчанию отмененные записи скрыты
	includeInactive, _ := strconv.ParseBool(r.URL.Query().Get("includeInactive"))

	result, err := h.service.GetUnitDay(r.Context(), &models.GetUnitDayRequest{
		ActorID:         actorID,
		UnitID:          unitID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /units/{id}/appointments - Access denied: unit_id=%d, actor_id=%s", unitID, actorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /units/{id}/appointments - Failed to get unit day: unit_id=%d, date=%s, error=%v",
				unitID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /units/{id}/appointments - Unit day retrieved: unit_id=%d, date=%s, total=%d",
		unitID, dateStr, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
