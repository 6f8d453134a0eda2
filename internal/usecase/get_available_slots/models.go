package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// Request модель запроса на получение слотов барбера на день
type Request struct {
	UnitID   int64     // ID барбершопа
	BarberID int64     // ID барбера
	Date     time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа с полной сеткой слотов на день
// UnitID/BarberID/Date повторяют запрос: клиент сверяет их с текущим
// выбором и отбрасывает устаревшие ответы
type Response struct {
	UnitID          int64
	BarberID        int64
	Date            time.Time
	Closed          bool // Барбершоп закрыт в этот день или дата в прошлом
	IntervalMinutes int
	Slots           []domain.Slot
}
