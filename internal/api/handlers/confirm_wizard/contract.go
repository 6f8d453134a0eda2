package confirm_wizard

import (
	"context"

	bookingWizard "github.com/m04kA/SMC-BarberBookingService/internal/usecase/booking_wizard"
)

type BookingWizardUseCase interface {
	Confirm(ctx context.Context, req *bookingWizard.ConfirmRequest) (*bookingWizard.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
