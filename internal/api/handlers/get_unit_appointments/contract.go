package get_unit_appointments

import (
	"context"

	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetUnitDay(ctx context.Context, req *models.GetUnitDayRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
