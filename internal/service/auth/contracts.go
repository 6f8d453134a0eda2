package auth

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/authservice"
)

// AuthClient интерфейс клиента auth-бэкенда
type AuthClient interface {
	SignUp(ctx context.Context, email, password string) (*authservice.Identity, error)
	SignIn(ctx context.Context, email, password string) (*authservice.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*authservice.Identity, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// EventDispatcher интерфейс отправки событий автоматизации
type EventDispatcher interface {
	NotifyCustomerCreated(ctx context.Context, profile *domain.Profile) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
