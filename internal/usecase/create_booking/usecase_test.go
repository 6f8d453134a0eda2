package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/trinks"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
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
	unitErr    error
	serviceErr error
	barberErr  error
}

func (s *stubCatalog) GetUnit(ctx context.Context, unitID int64) (*domain.Unit, error) {
	if s.unitErr != nil {
		return nil, s.unitErr
	}
	return &domain.Unit{ID: unitID, Name: "Prime Barber Centro"}, nil
}

func (s *stubCatalog) GetService(ctx context.Context, unitID, serviceID int64) (*domain.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return &domain.Service{ID: serviceID, Name: "Corte", DurationMinutes: 30, PriceCents: 4500}, nil
}

func (s *stubCatalog) GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	return &domain.Barber{ID: barberID, Name: "Carlos"}, nil
}

type stubAppointments struct {
	intervals []domain.BookedInterval
	created   *domain.Appointment
}

func (s *stubAppointments) Create(ctx context.Context, apt *domain.Appointment) (*domain.Appointment, error) {
	created := *apt
	created.ID = 101
	created.CreatedAt = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	s.created = &created
	return &created, nil
}

func (s *stubAppointments) GetBookedIntervals(ctx context.Context, barberID int64, date time.Time) ([]domain.BookedInterval, error) {
	return s.intervals, nil
}

type stubProfiles struct {
	err error
}

func (s *stubProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Profile{ID: id, FullName: "João Silva", Phone: "(11) 99999-1111", Role: domain.RoleCustomer}, nil
}

type stubTrinks struct {
	synced int
}

func (s *stubTrinks) SyncAppointment(ctx context.Context, appointment *domain.Appointment) (*trinks.SyncResult, error) {
	s.synced++
	return &trinks.SyncResult{Success: true, TrinksID: "STUB_ID"}, nil
}

type stubDispatcher struct {
	notified int
	last     *domain.Appointment
}

func (s *stubDispatcher) NotifyNewAppointment(ctx context.Context, appointment *domain.Appointment) error {
	s.notified++
	s.last = appointment
	return nil
}

type stubTxManager struct{}

func (stubTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func newTestUseCase(catalog *stubCatalog, appointments *stubAppointments, profiles *stubProfiles, tr *stubTrinks, disp *stubDispatcher, now time.Time) *UseCase {
	uc := NewUseCase(
		catalog,
		appointments,
		profiles,
		tr,
		disp,
		stubTxManager{},
		domain.BusinessHours{Start: 9, End: 19},
		[]int{0},
		30,
		nopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func validRequest(t *testing.T) *Request {
	return &Request{
		CustomerID: "7b6a0a52-3f9e-4e0e-9a35-1f1f35b6f001",
		UnitID:     1,
		ServiceID:  1,
		BarberID:   1,
		Date:       time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:  mustTime(t, "14:30"),
	}
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)

	t.Run("успешное создание записи рядом с занятым слотом", func(t *testing.T) {
		// Сценарий: барбер занят 14:00-14:30, клиент записывается на 14:30
		appointments := &stubAppointments{
			intervals: []domain.BookedInterval{
				{StartTime: mustTime(t, "14:00"), DurationMinutes: 30},
			},
		}
		tr := &stubTrinks{}
		disp := &stubDispatcher{}
		uc := newTestUseCase(&stubCatalog{}, appointments, &stubProfiles{}, tr, disp, now)

		resp, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)

		assert.Equal(t, int64(101), resp.ID)
		assert.Equal(t, "scheduled", resp.Status)
		assert.Equal(t, "14:30", resp.StartTime.String())
		assert.Equal(t, 30, resp.DurationMinutes)
		assert.Equal(t, "Corte", resp.ServiceName)
		assert.Equal(t, int64(4500), resp.ServicePriceCents)

		// Интеграции вызваны с display-данными после создания
		assert.Equal(t, 1, tr.synced)
		assert.Equal(t, 1, disp.notified)
		assert.Equal(t, "João Silva", disp.last.CustomerName)
		assert.Equal(t, "Prime Barber Centro", disp.last.UnitName)
		assert.Equal(t, "Carlos", disp.last.BarberName)
	})

	t.Run("пересечение с занятым интервалом", func(t *testing.T) {
		appointments := &stubAppointments{
			intervals: []domain.BookedInterval{
				{StartTime: mustTime(t, "14:30"), DurationMinutes: 30},
			},
		}
		uc := newTestUseCase(&stubCatalog{}, appointments, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("частичное пересечение тоже занято", func(t *testing.T) {
		// Занято 14:15-14:45, запись на 14:30 длительностью 30 минут пересекается
		appointments := &stubAppointments{
			intervals: []domain.BookedInterval{
				{StartTime: mustTime(t, "14:15"), DurationMinutes: 30},
			},
		}
		uc := newTestUseCase(&stubCatalog{}, appointments, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("граничащие интервалы не пересекаются", func(t *testing.T) {
		// Занято 14:00-14:30 и 15:00-15:30, запись 14:30-15:00 помещается ровно между ними
		appointments := &stubAppointments{
			intervals: []domain.BookedInterval{
				{StartTime: mustTime(t, "14:00"), DurationMinutes: 30},
				{StartTime: mustTime(t, "15:00"), DurationMinutes: 30},
			},
		}
		uc := newTestUseCase(&stubCatalog{}, appointments, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		_, err := uc.Execute(context.Background(), validRequest(t))
		require.NoError(t, err)
	})

	t.Run("время вне сетки слотов", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.StartTime = mustTime(t, "14:10")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("время вне рабочих часов", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.StartTime = mustTime(t, "19:00")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot)
	})

	t.Run("выходной день", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.Date = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC) // воскресенье

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrUnitClosed)
	})

	t.Run("прошедшая дата", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.Date = time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("прошедшее время сегодня", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.Date = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
		req.StartTime = mustTime(t, "10:00")

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrTimeInPast)
	})

	t.Run("услуга не оказывается в барбершопе", func(t *testing.T) {
		catalog := &stubCatalog{serviceErr: catalogRepo.ErrServiceNotFound}
		uc := newTestUseCase(catalog, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("барбершоп не найден", func(t *testing.T) {
		catalog := &stubCatalog{unitErr: catalogRepo.ErrUnitNotFound}
		uc := newTestUseCase(catalog, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})

	t.Run("невалидный запрос", func(t *testing.T) {
		uc := newTestUseCase(&stubCatalog{}, &stubAppointments{}, &stubProfiles{}, &stubTrinks{}, &stubDispatcher{}, now)

		req := validRequest(t)
		req.CustomerID = ""

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
