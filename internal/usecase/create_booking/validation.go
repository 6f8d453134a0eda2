package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID == "" {
		return fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	if req.UnitID <= 0 {
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateSchedule проверяет, что дата и время пригодны для записи:
// дата не в прошлом, день рабочий, время лежит на сетке слотов внутри
// рабочих часов и еще не прошло
func validateSchedule(
	req *Request,
	now time.Time,
	hours domain.BusinessHours,
	closedWeekdays []int,
	intervalMinutes int,
) error {
	if isDateInPast(req.Date, now) {
		return ErrInvalidDate
	}

	if isClosedWeekday(req.Date, closedWeekdays) {
		return ErrUnitClosed
	}

	minutes, err := req.StartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	startMinutes := hours.Start * 60
	endMinutes := hours.End * 60

	// Время должно лежать на сетке [start:00, end:00) с шагом intervalMinutes
	if minutes < startMinutes || minutes >= endMinutes {
		return fmt.Errorf("%w: time %s is outside business hours", ErrInvalidTimeSlot, req.StartTime)
	}

	if (minutes-startMinutes)%intervalMinutes != 0 {
		return fmt.Errorf("%w: time %s is not aligned to %d-minute grid", ErrInvalidTimeSlot, req.StartTime, intervalMinutes)
	}

	// Сегодняшний слот, начало которого <= now, уже прошел
	if isSameDay(req.Date, now) {
		slotAt, err := req.StartTime.OnDate(req.Date)
		if err != nil {
			return fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
		}
		if !slotAt.After(now) {
			return ErrTimeInPast
		}
	}

	return nil
}

// hasOverlap проверяет реальное пересечение интервала новой записи с занятыми
// Интервалы полуоткрытые: записи, граничащие концом и началом, не пересекаются
func hasOverlap(startMinutes, durationMinutes int, booked []domain.BookedInterval) bool {
	endMinutes := startMinutes + durationMinutes

	for _, b := range booked {
		bookedStart, err := b.StartTime.Minutes()
		if err != nil {
			continue
		}
		bookedEnd := bookedStart + b.DurationMinutes

		if startMinutes < bookedEnd && endMinutes > bookedStart {
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
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// isClosedWeekday проверяет, закрыт ли барбершоп в день недели указанной даты
func isClosedWeekday(date time.Time, closedWeekdays []int) bool {
	weekday := int(date.Weekday())
	for _, d := range closedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
