package list_unit_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog"
)

const (
	msgInvalidUnitID = "некорректный ID барбершопа"
	msgUnitNotFound  = "барбершоп не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/units/{unitId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id}/services - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	services, err := h.service.ListUnitServices(r.Context(), unitID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/services - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		default:
			h.logger.Error("GET /units/{id}/services - Failed to list services: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /units/{id}/services - Services listed successfully: unit_id=%d, total=%d", unitID, services.Total)
	handlers.RespondJSON(w, http.StatusOK, services)
}
