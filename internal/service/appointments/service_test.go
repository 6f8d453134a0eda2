package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubAppointments struct {
	byID       map[int64]*domain.Appointment
	byCustomer []*domain.Appointment
	byUnitDay  []*domain.Appointment
	updated    map[int64]domain.AppointmentStatus
}

func newStubAppointments() *stubAppointments {
	return &stubAppointments{
		byID:    make(map[int64]*domain.Appointment),
		updated: make(map[int64]domain.AppointmentStatus),
	}
}

func (s *stubAppointments) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	a, ok := s.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (s *stubAppointments) GetByCustomerID(ctx context.Context, customerID string) ([]*domain.Appointment, error) {
	return s.byCustomer, nil
}

func (s *stubAppointments) GetByUnitAndDate(ctx context.Context, filter domain.UnitDayFilter) ([]*domain.Appointment, error) {
	return s.byUnitDay, nil
}

func (s *stubAppointments) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := s.byID[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	s.byID[id].Status = status
	s.updated[id] = status
	return nil
}

type stubProfiles struct {
	profiles map[string]*domain.Profile
}

func (s *stubProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

type stubTrinks struct {
	cancelled []string
}

func (s *stubTrinks) CancelAppointment(ctx context.Context, trinksAppointmentID string) error {
	s.cancelled = append(s.cancelled, trinksAppointmentID)
	return nil
}

type stubDispatcher struct {
	cancelled int
	completed int
}

func (s *stubDispatcher) NotifyAppointmentCancelled(ctx context.Context, appointment *domain.Appointment, reason string) error {
	s.cancelled++
	return nil
}

func (s *stubDispatcher) NotifyAppointmentCompleted(ctx context.Context, appointment *domain.Appointment) error {
	s.completed++
	return nil
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func testAppointment(t *testing.T, id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		UnitID:          1,
		CustomerID:      "customer-1",
		BarberID:        1,
		ServiceID:       1,
		AppointmentDate: time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		StartTime:       mustTime(t, "14:30"),
		DurationMinutes: 30,
		Status:          status,
		ServiceName:     "Corte",
	}
}

func newTestService(repo *stubAppointments, tr *stubTrinks, disp *stubDispatcher) *Service {
	profiles := &stubProfiles{profiles: map[string]*domain.Profile{
		"admin-1":    {ID: "admin-1", Role: domain.RoleAdmin},
		"barber-1":   {ID: "barber-1", Role: domain.RoleBarber},
		"customer-1": {ID: "customer-1", Role: domain.RoleCustomer},
	}}
	return NewService(repo, profiles, tr, disp, nopLogger{})
}

func TestService_ToggleStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("переключение туда и обратно", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusCompleted)
		disp := &stubDispatcher{}
		svc := newTestService(repo, &stubTrinks{}, disp)

		resp, err := svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "admin-1", AppointmentID: 1})
		require.NoError(t, err)
		assert.Equal(t, "scheduled", resp.Status)

		resp, err = svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "admin-1", AppointmentID: 1})
		require.NoError(t, err)
		assert.Equal(t, "completed", resp.Status)

		// Событие completed отправляется только при переходе в completed
		assert.Equal(t, 1, disp.completed)
	})

	t.Run("отмененная запись не переключается", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusCancelled)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		_, err := svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "admin-1", AppointmentID: 1})
		assert.ErrorIs(t, err, ErrCannotToggle)
		assert.Empty(t, repo.updated)
	})

	t.Run("барбер имеет доступ", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusScheduled)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		_, err := svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "barber-1", AppointmentID: 1})
		require.NoError(t, err)
	})

	t.Run("клиент не имеет доступа", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusScheduled)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		_, err := svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "customer-1", AppointmentID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("неизвестный профиль", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusScheduled)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		_, err := svc.ToggleStatus(ctx, &models.ToggleStatusRequest{ActorID: "ghost", AppointmentID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("клиент отменяет свою запись", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusScheduled)
		tr := &stubTrinks{}
		disp := &stubDispatcher{}
		svc := newTestService(repo, tr, disp)

		err := svc.Cancel(ctx, &models.CancelRequest{CustomerID: "customer-1", AppointmentID: 1, Reason: "imprevisto"})
		require.NoError(t, err)

		assert.Equal(t, domain.StatusCancelled, repo.updated[1])
		assert.Equal(t, []string{"1"}, tr.cancelled)
		assert.Equal(t, 1, disp.cancelled)
	})

	t.Run("чужую запись отменить нельзя", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusScheduled)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		err := svc.Cancel(ctx, &models.CancelRequest{CustomerID: "customer-2", AppointmentID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.updated)
	})

	t.Run("завершенную запись отменить нельзя", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byID[1] = testAppointment(t, 1, domain.StatusCompleted)
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		err := svc.Cancel(ctx, &models.CancelRequest{CustomerID: "customer-1", AppointmentID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("запись не найдена", func(t *testing.T) {
		svc := newTestService(newStubAppointments(), &stubTrinks{}, &stubDispatcher{})

		err := svc.Cancel(ctx, &models.CancelRequest{CustomerID: "customer-1", AppointmentID: 404})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestService_GetUnitDay(t *testing.T) {
	ctx := context.Background()

	t.Run("сотрудник видит день барбершопа", func(t *testing.T) {
		repo := newStubAppointments()
		repo.byUnitDay = []*domain.Appointment{
			testAppointment(t, 1, domain.StatusScheduled),
			testAppointment(t, 2, domain.StatusCompleted),
		}
		svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

		resp, err := svc.GetUnitDay(ctx, &models.GetUnitDayRequest{
			ActorID: "barber-1",
			UnitID:  1,
			Date:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("клиенту доступ запрещен", func(t *testing.T) {
		svc := newTestService(newStubAppointments(), &stubTrinks{}, &stubDispatcher{})

		_, err := svc.GetUnitDay(ctx, &models.GetUnitDayRequest{
			ActorID: "customer-1",
			UnitID:  1,
			Date:    time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_GetUserAppointments(t *testing.T) {
	repo := newStubAppointments()
	repo.byCustomer = []*domain.Appointment{testAppointment(t, 1, domain.StatusScheduled)}
	svc := newTestService(repo, &stubTrinks{}, &stubDispatcher{})

	resp, err := svc.GetUserAppointments(context.Background(), "customer-1")
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Equal(t, "R$ 0,00", resp.Appointments[0].FormattedPrice)
	assert.Equal(t, "30min", resp.Appointments[0].FormattedDuration)
}
