package appointments

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Appointment, error)
	GetByUnitAndDate(ctx context.Context, filter domain.UnitDayFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// TrinksClient интерфейс синхронизации с внешней системой управления
type TrinksClient interface {
	CancelAppointment(ctx context.Context, trinksAppointmentID string) error
}

// EventDispatcher интерфейс отправки событий автоматизации
type EventDispatcher interface {
	NotifyAppointmentCancelled(ctx context.Context, appointment *domain.Appointment, reason string) error
	NotifyAppointmentCompleted(ctx context.Context, appointment *domain.Appointment) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
