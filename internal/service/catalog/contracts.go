package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/imageurl"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListUnits(ctx context.Context) ([]*domain.Unit, error)
	GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error)
	ListServicesByUnit(ctx context.Context, unitID int64) ([]*domain.Service, error)
	ListAllServices(ctx context.Context) ([]*domain.Service, error)
	ListBarbersByUnit(ctx context.Context, unitID int64) ([]*domain.Barber, error)
}

// ImageResolver интерфейс построения публичных URL изображений
type ImageResolver interface {
	Resolve(path string, kind imageurl.Kind) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
