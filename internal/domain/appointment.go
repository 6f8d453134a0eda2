package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	return s == StatusScheduled || s == StatusCompleted || s == StatusCancelled
}

// Appointment represents a customer appointment with a barber
type Appointment struct {
	ID              int64
	UnitID          int64
	CustomerID      string // uuid профиля клиента
	BarberID        int64
	ServiceID       int64
	AppointmentDate time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data for history
	ServiceName       string
	ServicePriceCents int64

	// Joined display data (заполняются запросами со связями, не хранятся)
	UnitName      string
	BarberName    string
	CustomerName  string
	CustomerPhone string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanToggleStatus returns true if the status participates in the admin toggle
// Отмененные записи в toggle не участвуют никогда
func (a *Appointment) CanToggleStatus() bool {
	return a.Status == StatusScheduled || a.Status == StatusCompleted
}

// ToggledStatus returns the opposite toggle status (scheduled <-> completed)
func (a *Appointment) ToggledStatus() AppointmentStatus {
	if a.Status == StatusCompleted {
		return StatusScheduled
	}
	return StatusCompleted
}

// StartsAt совмещает дату и время начала в один момент времени
func (a *Appointment) StartsAt() (time.Time, error) {
	return a.StartTime.OnDate(a.AppointmentDate)
}

// BookedInterval занятый интервал барбера - вход для расчета доступности
type BookedInterval struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// UnitDayFilter фильтр для выборки записей юнита на конкретный день
type UnitDayFilter struct {
	UnitID          int64
	Date            time.Time
	IncludeInactive bool // включать ли отмененные записи
}
