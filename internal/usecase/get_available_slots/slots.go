package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// computeSlots генерирует полную сетку слотов на день
// Сетка начинается в hours.Start:00 и идет с шагом intervalMinutes строго
// до hours.End:00 (не включая). Последний слот может заканчиваться позже
// закрытия - сетка не обрезается по длительности услуги.
// Функция детерминирована и не имеет побочных эффектов
func computeSlots(
	hours domain.BusinessHours,
	intervalMinutes int,
	date time.Time,
	now time.Time,
	booked []domain.BookedInterval,
) ([]domain.Slot, error) {
	startMinutes := hours.Start * 60
	endMinutes := hours.End * 60

	slots := make([]domain.Slot, 0, (endMinutes-startMinutes)/intervalMinutes+1)
	today := isSameDay(date, now)

	for m := startMinutes; m < endMinutes; m += intervalMinutes {
		startTime, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			return nil, err
		}

		slot := domain.Slot{StartTime: startTime}

		// Прошедшим считается слот сегодняшнего дня, начало которого <= now
		if today {
			slotAt, err := startTime.OnDate(date)
			if err != nil {
				return nil, err
			}
			slot.IsPast = !slotAt.After(now)
		}

		slot.IsBooked = isBookedAt(m, booked)

		slots = append(slots, slot)
	}

	return slots, nil
}

// isBookedAt проверяет, попадает ли начало слота в один из занятых интервалов
// Интервалы полуоткрытые [start, start+duration): слот, начинающийся ровно
// в конце занятого интервала, свободен
func isBookedAt(slotMinutes int, booked []domain.BookedInterval) bool {
	for _, b := range booked {
		bookedStart, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}

		if slotMinutes >= bookedStart && slotMinutes < bookedStart+b.DurationMinutes {
			return true
		}
	}

	return false
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isClosedWeekday проверяет, закрыт ли барбершоп в день недели указанной даты
// Индексация дней совпадает с time.Weekday: 0 - воскресенье
func isClosedWeekday(date time.Time, closedWeekdays []int) bool {
	weekday := int(date.Weekday())
	for _, d := range closedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
