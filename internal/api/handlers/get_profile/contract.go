package get_profile

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/auth/models"
)

type AuthService interface {
	GetProfile(ctx context.Context, identityID string) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
