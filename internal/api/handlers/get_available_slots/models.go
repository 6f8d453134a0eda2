package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarberBookingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
// UnitID/BarberID/Date повторяют запрос: клиент сверяет их с текущим
// выбором и отбрасывает устаревшие ответы
type AvailableSlotsResponse struct {
	UnitID          int64           `json:"unitId"`
	BarberID        int64           `json:"barberId"`
	Date            string          `json:"date"`
	Closed          bool            `json:"closed"`
	IntervalMinutes int             `json:"intervalMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	IsPast    bool   `json:"isPast"`
	IsBooked  bool   `json:"isBooked"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i := range resp.Slots {
		slot := resp.Slots[i]
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			IsPast:    slot.IsPast,
			IsBooked:  slot.IsBooked,
			Available: slot.IsAvailable(),
		}
	}

	return &AvailableSlotsResponse{
		UnitID:          resp.UnitID,
		BarberID:        resp.BarberID,
		Date:            resp.Date.Format(domain.DateFormat),
		Closed:          resp.Closed,
		IntervalMinutes: resp.IntervalMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(unitID, barberID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UnitID:   unitID,
		BarberID: barberID,
		Date:     date,
	}, nil
}
