package list_all_services

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListAllServices(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
