package get_wizard

import (
	"context"

	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	Get(ctx context.Context, token string) (*bookingWizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
