package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/trinks"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error)
	// GetService получает услугу, оказываемую в указанном барбершопе
	GetService(ctx context.Context, unitID, serviceID int64) (*domain.Service, error)
	GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error)
	// GetBookedIntervals в транзакции блокирует строки записей барбера (FOR UPDATE)
	GetBookedIntervals(ctx context.Context, barberID int64, date time.Time) ([]domain.BookedInterval, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// TrinksClient интерфейс синхронизации с внешней системой управления
type TrinksClient interface {
	SyncAppointment(ctx context.Context, appointment *domain.Appointment) (*trinks.SyncResult, error)
}

// EventDispatcher интерфейс отправки событий автоматизации
type EventDispatcher interface {
	NotifyNewAppointment(ctx context.Context, appointment *domain.Appointment) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
