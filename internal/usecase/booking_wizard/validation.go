package booking_wizard

import (
	"fmt"
	"time"
)

// validateSelectRequest валидирует запрос выбора: токен обязателен,
// заполнено ровно одно из полей выбора
func validateSelectRequest(req *SelectRequest) error {
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	selections := 0
	if req.UnitID != nil {
		selections++
	}
	if req.ServiceID != nil {
		selections++
	}
	if req.BarberID != nil {
		selections++
	}
	if req.Date != nil {
		selections++
	}
	if req.Time != nil {
		selections++
	}

	if selections != 1 {
		return fmt.Errorf("%w: exactly one selection is required, got %d", ErrInvalidInput, selections)
	}

	if req.UnitID != nil && *req.UnitID <= 0 {
		return fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}
	if req.BarberID != nil && *req.BarberID <= 0 {
		return fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}
	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date must not be zero", ErrInvalidInput)
	}
	if req.Time != nil {
		if err := req.Time.Validate(); err != nil {
			return fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
		}
	}

	return nil
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
