package toggle_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	ToggleStatus(ctx context.Context, req *models.ToggleStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
