package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type stubCatalog struct {
	unitErr   error
	barberErr error
}

func (s *stubCatalog) GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error) {
	if s.unitErr != nil {
		return nil, s.unitErr
	}
	return &domain.Unit{ID: unitID, Name: "Prime Barber Centro"}, nil
}

func (s *stubCatalog) GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	return &domain.Barber{ID: barberID, Name: "Carlos"}, nil
}

type stubAppointments struct {
	intervals []domain.BookedInterval
	err       error
}

func (s *stubAppointments) GetBookedIntervals(ctx context.Context, barberID int64, date time.Time) ([]domain.BookedInterval, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.intervals, nil
}

func newTestUseCase(catalog *stubCatalog, appointments *stubAppointments, now time.Time) *UseCase {
	uc := NewUseCase(
		catalog,
		appointments,
		domain.BusinessHours{Start: 9, End: 19},
		[]int{0}, // воскресенье - выходной
		30,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)

	t.Run("день с одной записью", func(t *testing.T) {
		// Сценарий: барбер B1, запись 14:00-14:30, сетка 9-19 с шагом 30
		appointments := &stubAppointments{
			intervals: []domain.BookedInterval{
				{StartTime: mustTime(t, "14:00"), DurationMinutes: 30},
			},
		}
		uc := newTestUseCase(&stubCatalog{}, appointments, now)

		resp, err := uc.Execute(context.Background(), &Request{
			UnitID:   1,
			BarberID: 1,
			Date:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.False(t, resp.Closed)
		assert.Equal(t, int64(1), resp.UnitID)
		assert.Equal(t, int64(1), resp.BarberID)
		assert.Len(t, resp.Slots, 20)

		booked := 0
		for _, s := range resp.Slots {
			assert.False(t, s.IsPast)
			if s.IsBooked {
				booked++
				assert.Equal(t, "14:00", s.StartTime.String())
			}
		}
		assert.Equal(t, 1, booked)
	})

	t.Run("выходной день дает пустую сетку", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, now)

		resp, err := uc.Execute(context.Background(), &Request{
			UnitID:   1,
			BarberID: 1,
			Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), // воскресенье
		})
		require.NoError(t, err)

		assert.True(t, resp.Closed)
		assert.Empty(t, resp.Slots)
	})

	t.Run("прошедшая дата дает пустую сетку", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, now)

		resp, err := uc.Execute(context.Background(), &Request{
			UnitID:   1,
			BarberID: 1,
			Date:     time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)

		assert.True(t, resp.Closed)
		assert.Empty(t, resp.Slots)
	})

	t.Run("барбершоп не найден", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{unitErr: catalogRepo.ErrUnitNotFound}, &stubAppointments{}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UnitID:   99,
			BarberID: 1,
			Date:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})

	t.Run("барбер не найден", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{barberErr: catalogRepo.ErrBarberNotFound}, &stubAppointments{}, now)

		_, err := uc.Execute(context.Background(), &Request{
			UnitID:   1,
			BarberID: 99,
			Date:     time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrBarberNotFound)
	})

	t.Run("невалидный запрос", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, now)

		_, err := uc.Execute(context.Background(), &Request{UnitID: 0, BarberID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
