package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	UnitID    int64  `json:"unitId"`
	ServiceID int64  `json:"serviceId"`
	BarberID  int64  `json:"barberId"`
	Date      string `json:"date"`      // "2026-01-14"
	StartTime string `json:"startTime"` // "14:30"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID                int64  `json:"id"`
	CustomerID        string `json:"customerId"`
	UnitID            int64  `json:"unitId"`
	ServiceID         int64  `json:"serviceId"`
	BarberID          int64  `json:"barberId"`
	Date              string `json:"date"`
	StartTime         string `json:"startTime"`
	DurationMinutes   int    `json:"durationMinutes"`
	Status            string `json:"status"`
	ServiceName       string `json:"serviceName"`
	ServicePriceCents int64  `json:"servicePriceCents"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(customerID string) (*createBooking.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID: customerID,
		UnitID:     r.UnitID,
		ServiceID:  r.ServiceID,
		BarberID:   r.BarberID,
		Date:       date,
		StartTime:  startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                resp.ID,
		CustomerID:        resp.CustomerID,
		UnitID:            resp.UnitID,
		ServiceID:         resp.ServiceID,
		BarberID:          resp.BarberID,
		Date:              resp.Date.Format(domain.DateFormat),
		StartTime:         resp.StartTime.String(),
		DurationMinutes:   resp.DurationMinutes,
		Status:            resp.Status,
		ServiceName:       resp.ServiceName,
		ServicePriceCents: resp.ServicePriceCents,
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
