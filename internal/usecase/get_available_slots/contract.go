package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	// GetUnit получает барбершоп по ID
	GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error)
	// GetBarber получает барбера, работающего в указанном барбершопе
	GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedIntervals получает занятые интервалы барбера на дату (без отмененных)
	GetBookedIntervals(ctx context.Context, barberID int64, date time.Time) ([]domain.BookedInterval, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
