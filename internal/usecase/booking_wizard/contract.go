package booking_wizard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
)

// DraftStore интерфейс хранилища черновиков бронирования
type DraftStore interface {
	Save(draft *domain.BookingDraft)
	Get(token string) (*domain.BookingDraft, error)
	Delete(token string)
}

// CatalogRepository интерфейс репозитория каталога
// Используется для проверки выборов мастера на существование
type CatalogRepository interface {
	GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error)
	GetService(ctx context.Context, unitID, serviceID int64) (*domain.Service, error)
	GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error)
}

// BookingCreator интерфейс создания записи при подтверждении
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
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
