package models

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/format"
)

// Request модели

// GetUnitDayRequest запрос дня барбершопа для админ-панели
type GetUnitDayRequest struct {
	ActorID         string    `json:"actorId"` // uuid профиля сотрудника
	UnitID          int64     `json:"unitId"`
	Date            time.Time `json:"date"`
	IncludeInactive bool      `json:"includeInactive,omitempty"` // Включить отмененные записи
}

// ToggleStatusRequest запрос переключения статуса записи
type ToggleStatusRequest struct {
	ActorID       string `json:"actorId"`
	AppointmentID int64  `json:"appointmentId"`
}

// CancelRequest запрос отмены записи клиентом
type CancelRequest struct {
	CustomerID    string `json:"customerId"`
	AppointmentID int64  `json:"appointmentId"`
	Reason        string `json:"reason,omitempty"`
}

// Response модели

// AppointmentResponse ответ с данными записи
// Форматированные поля готовы к показу без локали на клиенте
type AppointmentResponse struct {
	ID              int64  `json:"id"`
	UnitID          int64  `json:"unitId"`
	CustomerID      string `json:"customerId"`
	BarberID        int64  `json:"barberId"`
	ServiceID       int64  `json:"serviceId"`
	Date            string `json:"date"`      // "2025-06-12"
	StartTime       string `json:"startTime"` // "14:30"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	ServiceName       string `json:"serviceName"`
	ServicePriceCents int64  `json:"servicePriceCents"`

	UnitName      string `json:"unitName,omitempty"`
	BarberName    string `json:"barberName,omitempty"`
	CustomerName  string `json:"customerName,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`

	FormattedDate     string `json:"formattedDate"`     // "12/06/2025"
	FormattedDateFull string `json:"formattedDateFull"` // "quinta-feira, 12 de junho"
	FormattedPrice    string `json:"formattedPrice"`    // "R$ 45,00"
	FormattedDuration string `json:"formattedDuration"` // "30min"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []*AppointmentResponse `json:"appointments"`
	Total        int                    `json:"total"`
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:                a.ID,
		UnitID:            a.UnitID,
		CustomerID:        a.CustomerID,
		BarberID:          a.BarberID,
		ServiceID:         a.ServiceID,
		Date:              a.AppointmentDate.Format(domain.DateFormat),
		StartTime:         a.StartTime.String(),
		DurationMinutes:   a.DurationMinutes,
		Status:            string(a.Status),
		ServiceName:       a.ServiceName,
		ServicePriceCents: a.ServicePriceCents,
		UnitName:          a.UnitName,
		BarberName:        a.BarberName,
		CustomerName:      a.CustomerName,
		CustomerPhone:     a.CustomerPhone,
		FormattedDate:     format.Date(a.AppointmentDate),
		FormattedDateFull: format.DateFull(a.AppointmentDate),
		FormattedPrice:    format.Price(a.ServicePriceCents),
		FormattedDuration: format.Duration(a.DurationMinutes),
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в response
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]*AppointmentResponse, 0, len(list))
	for _, a := range list {
		appointments = append(appointments, FromDomainAppointment(a))
	}

	return &AppointmentListResponse{
		Appointments: appointments,
		Total:        len(appointments),
	}
}
