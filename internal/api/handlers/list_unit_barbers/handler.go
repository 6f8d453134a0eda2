package list_unit_barbers

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

// Handle GET /api/v1/units/{unitId}/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	unitID, err := strconv.ParseInt(vars["unitId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /units/{id}/barbers - Invalid unit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUnitID)
		return
	}

	barbers, err := h.service.ListUnitBarbers(r.Context(), unitID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnitNotFound):
			h.logger.Warn("GET /units/{id}/barbers - Unit not found: unit_id=%d", unitID)
			handlers.RespondNotFound(w, msgUnitNotFound)

		default:
			h.logger.Error("GET /units/{id}/barbers - Failed to list barbers: unit_id=%d, error=%v", unitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /units/{id}/barbers - Barbers listed successfully: unit_id=%d, total=%d", unitID, barbers.Total)
	handlers.RespondJSON(w, http.StatusOK, barbers)
}
