package create_booking

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	CustomerID string           // ID профиля клиента (uuid идентичности)
	UnitID     int64            // ID барбершопа
	ServiceID  int64            // ID услуги
	BarberID   int64            // ID барбера
	Date       time.Time        // Дата записи (без времени)
	StartTime  types.TimeString // Время начала слота (например, "14:30")
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	CustomerID      string           // ID профиля клиента
	UnitID          int64            // ID барбершопа
	ServiceID       int64            // ID услуги
	BarberID        int64            // ID барбера
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи (всегда scheduled при создании)

	// Денормализованные данные услуги
	ServiceName       string
	ServicePriceCents int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
