package list_units

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListUnits(ctx context.Context) (*models.UnitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
