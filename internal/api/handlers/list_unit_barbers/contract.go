package list_unit_barbers

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListUnitBarbers(ctx context.Context, unitID int64) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
