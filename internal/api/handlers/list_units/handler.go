package list_units

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBookingService/internal/api/handlers"
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

// Handle GET /api/v1/units
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.ListUnits(r.Context())
	if err != nil {
		h.logger.Error("GET /units - Failed to list units: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /units - Units listed successfully: total=%d", units.Total)
	handlers.RespondJSON(w, http.StatusOK, units)
}
