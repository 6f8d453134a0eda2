package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func TestComputeSlots_GridSize(t *testing.T) {
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		hours    domain.BusinessHours
		interval int
		expected int
	}{
		{
			name:     "стандартный день 9-19 с шагом 30",
			hours:    domain.BusinessHours{Start: 9, End: 19},
			interval: 30,
			expected: 20,
		},
		{
			name:     "шаг 15 минут",
			hours:    domain.BusinessHours{Start: 9, End: 19},
			interval: 15,
			expected: 40,
		},
		{
			name:     "шаг не делит час нацело",
			hours:    domain.BusinessHours{Start: 9, End: 11},
			interval: 45,
			expected: 3, // ceil(120/45): 09:00, 09:45, 10:30
		},
		{
			name:     "короткий день",
			hours:    domain.BusinessHours{Start: 10, End: 11},
			interval: 30,
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := computeSlots(tt.hours, tt.interval, date, now, nil)
			require.NoError(t, err)
			assert.Len(t, slots, tt.expected)

			// Сетка строго возрастает, без дубликатов
			for i := 1; i < len(slots); i++ {
				assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime))
			}

			// Первый слот - ровно начало рабочего дня, последний - строго до закрытия
			first, err := slots[0].StartTime.Minutes()
			require.NoError(t, err)
			assert.Equal(t, tt.hours.Start*60, first)

			last, err := slots[len(slots)-1].StartTime.Minutes()
			require.NoError(t, err)
			assert.Less(t, last, tt.hours.End*60)
		})
	}
}

func TestComputeSlots_HalfOpenBookedBoundary(t *testing.T) {
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	// Занято 10:00-10:30 на сетке с шагом 15
	booked := []domain.BookedInterval{
		{StartTime: mustTime(t, "10:00"), DurationMinutes: 30},
	}

	slots, err := computeSlots(domain.BusinessHours{Start: 9, End: 19}, 15, date, now, booked)
	require.NoError(t, err)

	byTime := make(map[string]domain.Slot, len(slots))
	for _, s := range slots {
		byTime[s.StartTime.String()] = s
	}

	assert.False(t, byTime["09:30"].IsBooked)
	assert.False(t, byTime["09:45"].IsBooked)
	assert.True(t, byTime["10:00"].IsBooked)
	assert.True(t, byTime["10:15"].IsBooked)
	// Полуоткрытая граница: слот, начинающийся в конце занятого интервала, свободен
	assert.False(t, byTime["10:30"].IsBooked)
}

func TestComputeSlots_PastRule(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)
	hours := domain.BusinessHours{Start: 9, End: 19}

	t.Run("сегодня слоты до текущего времени включительно прошедшие", func(t *testing.T) {
		today := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

		slots, err := computeSlots(hours, 15, today, now, nil)
		require.NoError(t, err)

		for _, s := range slots {
			minutes, err := s.StartTime.Minutes()
			require.NoError(t, err)

			if minutes <= 10*60+15 {
				assert.True(t, s.IsPast, "slot %s must be past", s.StartTime)
			} else {
				assert.False(t, s.IsPast, "slot %s must not be past", s.StartTime)
			}
		}
	})

	t.Run("завтра прошедших слотов нет", func(t *testing.T) {
		tomorrow := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

		slots, err := computeSlots(hours, 15, tomorrow, now, nil)
		require.NoError(t, err)

		for _, s := range slots {
			assert.False(t, s.IsPast, "slot %s must not be past", s.StartTime)
		}
	})
}

func TestSlot_IsAvailable(t *testing.T) {
	assert.True(t, (&domain.Slot{}).IsAvailable())
	assert.False(t, (&domain.Slot{IsPast: true}).IsAvailable())
	assert.False(t, (&domain.Slot{IsBooked: true}).IsAvailable())
	assert.False(t, (&domain.Slot{IsPast: true, IsBooked: true}).IsAvailable())
}

func TestIsClosedWeekday(t *testing.T) {
	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	assert.True(t, isClosedWeekday(sunday, []int{0}))
	assert.False(t, isClosedWeekday(monday, []int{0}))
	assert.False(t, isClosedWeekday(sunday, nil))
}
