package booking_wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBookingService/pkg/ptr"
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

type memoryDrafts struct {
	drafts map[string]*domain.BookingDraft
}

func newMemoryDrafts() *memoryDrafts {
	return &memoryDrafts{drafts: make(map[string]*domain.BookingDraft)}
}

func (m *memoryDrafts) Save(draft *domain.BookingDraft) {
	copied := *draft
	m.drafts[draft.Token] = &copied
}

func (m *memoryDrafts) Get(token string) (*domain.BookingDraft, error) {
	d, ok := m.drafts[token]
	if !ok {
		return nil, errors.New("not found")
	}
	copied := *d
	return &copied, nil
}

func (m *memoryDrafts) Delete(token string) {
	delete(m.drafts, token)
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
	return &domain.Unit{ID: unitID}, nil
}

func (s *stubCatalog) GetService(ctx context.Context, unitID, serviceID int64) (*domain.Service, error) {
	if s.serviceErr != nil {
		return nil, s.serviceErr
	}
	return &domain.Service{ID: serviceID, Name: "Corte", DurationMinutes: 30}, nil
}

func (s *stubCatalog) GetBarber(ctx context.Context, unitID, barberID int64) (*domain.Barber, error) {
	if s.barberErr != nil {
		return nil, s.barberErr
	}
	return &domain.Barber{ID: barberID}, nil
}

type stubCreator struct {
	err   error
	calls int
	last  *create_booking.Request
}

func (s *stubCreator) Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error) {
	s.calls++
	s.last = req
	if s.err != nil {
		return nil, s.err
	}
	return &create_booking.Response{
		ID:        101,
		Status:    "scheduled",
		StartTime: req.StartTime,
		Date:      req.Date,
	}, nil
}

func mustTime(t *testing.T, s string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(s)
	require.NoError(t, err)
	return ts
}

func newTestUseCase(catalog *stubCatalog, creator *stubCreator, now time.Time) (*UseCase, *memoryDrafts) {
	drafts := newMemoryDrafts()
	uc := NewUseCase(drafts, catalog, creator, []int{0}, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc, drafts
}

// fillDraft проводит сессию через все шаги выбора до шага подтверждения
func fillDraft(t *testing.T, uc *UseCase) string {
	t.Helper()
	ctx := context.Background()

	started, err := uc.Start(ctx)
	require.NoError(t, err)
	token := started.Token

	_, err = uc.Select(ctx, &SelectRequest{Token: token, UnitID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	_, err = uc.Select(ctx, &SelectRequest{Token: token, ServiceID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	_, err = uc.Select(ctx, &SelectRequest{Token: token, BarberID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	_, err = uc.Select(ctx, &SelectRequest{Token: token, Date: &date})
	require.NoError(t, err)
	slot := mustTime(t, "14:30")
	resp, err := uc.Select(ctx, &SelectRequest{Token: token, Time: &slot})
	require.NoError(t, err)
	require.Equal(t, domain.StepConfirm, resp.Step)

	return token
}

func TestUseCase_StartAndSelectFlow(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

	started, err := uc.Start(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, started.Token)
	assert.Equal(t, domain.StepSelectUnit, started.Step)
	assert.Nil(t, started.UnitID)

	// Каждый валидный выбор продвигает мастер на следующий шаг
	resp, err := uc.Select(ctx, &SelectRequest{Token: started.Token, UnitID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectService, resp.Step)
	assert.Empty(t, resp.Warning)

	resp, err = uc.Select(ctx, &SelectRequest{Token: started.Token, ServiceID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectBarber, resp.Step)

	resp, err = uc.Select(ctx, &SelectRequest{Token: started.Token, BarberID: ptr.Ptr(int64(3))})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDateTime, resp.Step)

	date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
	resp, err = uc.Select(ctx, &SelectRequest{Token: started.Token, Date: &date})
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectDateTime, resp.Step)
	assert.Nil(t, resp.Time)

	slot := mustTime(t, "14:30")
	resp, err = uc.Select(ctx, &SelectRequest{Token: started.Token, Time: &slot})
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirm, resp.Step)
}

func TestUseCase_GuardWarnings(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("переход вперед без выбора не меняет состояние", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)

		resp, err := uc.Next(ctx, started.Token)
		require.NoError(t, err)
		assert.Equal(t, domain.StepSelectUnit, resp.Step)
		assert.Equal(t, WarningSelectUnit, resp.Warning)
	})

	t.Run("переход 4-5 без времени дает одно предупреждение", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)
		token := started.Token

		_, err = uc.Select(ctx, &SelectRequest{Token: token, UnitID: ptr.Ptr(int64(1))})
		require.NoError(t, err)
		_, err = uc.Select(ctx, &SelectRequest{Token: token, ServiceID: ptr.Ptr(int64(2))})
		require.NoError(t, err)
		_, err = uc.Select(ctx, &SelectRequest{Token: token, BarberID: ptr.Ptr(int64(3))})
		require.NoError(t, err)
		date := time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC)
		before, err := uc.Select(ctx, &SelectRequest{Token: token, Date: &date})
		require.NoError(t, err)
		require.Equal(t, domain.StepSelectDateTime, before.Step)

		// Время не выбрано - состояние не меняется, ровно одно предупреждение
		resp, err := uc.Next(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, domain.StepSelectDateTime, resp.Step)
		assert.Equal(t, WarningSelectDateTime, resp.Warning)

		after, err := uc.Get(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, before.UnitID, after.UnitID)
		assert.Equal(t, before.Date, after.Date)
		assert.Nil(t, after.Time)
	})

	t.Run("выбор услуги без барбершопа", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)

		resp, err := uc.Select(ctx, &SelectRequest{Token: started.Token, ServiceID: ptr.Ptr(int64(2))})
		require.NoError(t, err)
		assert.Equal(t, WarningSelectUnit, resp.Warning)
		assert.Nil(t, resp.ServiceID)
		assert.Equal(t, domain.StepSelectUnit, resp.Step)
	})

	t.Run("выбор времени без даты", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)

		slot := mustTime(t, "14:30")
		resp, err := uc.Select(ctx, &SelectRequest{Token: started.Token, Time: &slot})
		require.NoError(t, err)
		assert.Equal(t, WarningSelectDateFirst, resp.Warning)
		assert.Nil(t, resp.Time)
	})
}

func TestUseCase_DownstreamClearing(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("смена барбершопа сбрасывает услугу, барбера, дату и время", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
		token := fillDraft(t, uc)

		resp, err := uc.Select(ctx, &SelectRequest{Token: token, UnitID: ptr.Ptr(int64(9))})
		require.NoError(t, err)

		assert.Equal(t, int64(9), *resp.UnitID)
		assert.Nil(t, resp.ServiceID)
		assert.Nil(t, resp.BarberID)
		assert.Nil(t, resp.Date)
		assert.Nil(t, resp.Time)
		assert.Equal(t, domain.StepSelectService, resp.Step)
	})

	t.Run("повторный выбор того же барбершопа не сбрасывает выборы", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
		token := fillDraft(t, uc)

		resp, err := uc.Select(ctx, &SelectRequest{Token: token, UnitID: ptr.Ptr(int64(1))})
		require.NoError(t, err)

		assert.Equal(t, int64(2), *resp.ServiceID)
		assert.Equal(t, int64(3), *resp.BarberID)
		assert.NotNil(t, resp.Date)
		assert.NotNil(t, resp.Time)
	})

	t.Run("смена барбера сбрасывает дату и время", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
		token := fillDraft(t, uc)

		resp, err := uc.Select(ctx, &SelectRequest{Token: token, BarberID: ptr.Ptr(int64(7))})
		require.NoError(t, err)

		assert.Equal(t, int64(7), *resp.BarberID)
		assert.Nil(t, resp.Date)
		assert.Nil(t, resp.Time)
	})

	t.Run("смена даты сбрасывает время", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
		token := fillDraft(t, uc)

		newDate := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Select(ctx, &SelectRequest{Token: token, Date: &newDate})
		require.NoError(t, err)

		assert.Nil(t, resp.Time)
	})
}

func TestUseCase_SelectDateUnavailable(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
	token := fillDraft(t, uc)

	t.Run("выходной день", func(t *testing.T) {
		sunday := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Select(ctx, &SelectRequest{Token: token, Date: &sunday})
		require.NoError(t, err)
		assert.Equal(t, WarningDateUnavailable, resp.Warning)
		assert.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), *resp.Date)
	})

	t.Run("прошедшая дата", func(t *testing.T) {
		past := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
		resp, err := uc.Select(ctx, &SelectRequest{Token: token, Date: &past})
		require.NoError(t, err)
		assert.Equal(t, WarningDateUnavailable, resp.Warning)
	})
}

func TestUseCase_ConfirmSuspendAndResume(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	creator := &stubCreator{}
	uc, _ := newTestUseCase(&stubCatalog{}, creator, now)
	token := fillDraft(t, uc)

	before, err := uc.Get(ctx, token)
	require.NoError(t, err)

	// Подтверждение без аутентификации приостанавливает сессию
	_, err = uc.Confirm(ctx, &ConfirmRequest{Token: token})
	assert.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.Zero(t, creator.calls)

	// Черновик сохранен целиком и ждет на шаге подтверждения
	suspended, err := uc.Get(ctx, token)
	require.NoError(t, err)
	assert.True(t, suspended.Suspended)
	assert.Equal(t, domain.StepConfirm, suspended.Step)
	assert.Equal(t, before.UnitID, suspended.UnitID)
	assert.Equal(t, before.ServiceID, suspended.ServiceID)
	assert.Equal(t, before.BarberID, suspended.BarberID)
	assert.Equal(t, before.Date, suspended.Date)
	assert.Equal(t, before.Time, suspended.Time)

	// После входа подтверждение продолжается с того же места
	resp, err := uc.Confirm(ctx, &ConfirmRequest{Token: token, CustomerID: "customer-1"})
	require.NoError(t, err)

	assert.True(t, resp.Submitted)
	assert.False(t, resp.Suspended)
	assert.Equal(t, int64(101), *resp.AppointmentID)
	assert.Equal(t, 1, creator.calls)
	assert.Equal(t, "customer-1", creator.last.CustomerID)
	assert.Equal(t, int64(1), creator.last.UnitID)
	assert.Equal(t, "14:30", creator.last.StartTime.String())
}

func TestUseCase_ConfirmFailureIsRetryable(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	creator := &stubCreator{err: create_booking.ErrSlotTaken}
	uc, _ := newTestUseCase(&stubCatalog{}, creator, now)
	token := fillDraft(t, uc)

	_, err := uc.Confirm(ctx, &ConfirmRequest{Token: token, CustomerID: "customer-1"})
	assert.ErrorIs(t, err, create_booking.ErrSlotTaken)

	// Состояние осталось на шаге подтверждения, submit можно повторить
	state, err := uc.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.StepConfirm, state.Step)
	assert.False(t, state.Submitted)

	creator.err = nil
	resp, err := uc.Confirm(ctx, &ConfirmRequest{Token: token, CustomerID: "customer-1"})
	require.NoError(t, err)
	assert.True(t, resp.Submitted)
	assert.Equal(t, 2, creator.calls)
}

func TestUseCase_ConfirmIncompleteDraft(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

	started, err := uc.Start(ctx)
	require.NoError(t, err)

	resp, err := uc.Confirm(ctx, &ConfirmRequest{Token: started.Token, CustomerID: "customer-1"})
	require.NoError(t, err)
	assert.Equal(t, WarningIncompleteDraft, resp.Warning)
	assert.False(t, resp.Submitted)
}

func TestUseCase_SubmittedLocksDraft(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
	token := fillDraft(t, uc)

	_, err := uc.Confirm(ctx, &ConfirmRequest{Token: token, CustomerID: "customer-1"})
	require.NoError(t, err)

	_, err = uc.Select(ctx, &SelectRequest{Token: token, UnitID: ptr.Ptr(int64(2))})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	_, err = uc.Confirm(ctx, &ConfirmRequest{Token: token, CustomerID: "customer-1"})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	// Reset снимает блокировку и начинает новую сессию с тем же токеном
	resp, err := uc.Reset(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectUnit, resp.Step)
	assert.False(t, resp.Submitted)
}

func TestUseCase_ResetIsIdempotent(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)
	token := fillDraft(t, uc)

	first, err := uc.Reset(ctx, token)
	require.NoError(t, err)
	second, err := uc.Reset(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.StepSelectUnit, second.Step)
	assert.Nil(t, second.UnitID)
	assert.Nil(t, second.ServiceID)
	assert.Nil(t, second.BarberID)
	assert.Nil(t, second.Date)
	assert.Nil(t, second.Time)
}

func TestUseCase_BackFloorsAtFirstStep(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

	started, err := uc.Start(ctx)
	require.NoError(t, err)

	resp, err := uc.Back(ctx, started.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectUnit, resp.Step)

	// Назад не сбрасывает сделанные выборы
	_, err = uc.Select(ctx, &SelectRequest{Token: started.Token, UnitID: ptr.Ptr(int64(1))})
	require.NoError(t, err)
	resp, err = uc.Back(ctx, started.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.StepSelectUnit, resp.Step)
	assert.Equal(t, int64(1), *resp.UnitID)
}

func TestUseCase_Errors(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("неизвестный токен", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		_, err := uc.Get(ctx, "unknown")
		assert.ErrorIs(t, err, ErrDraftNotFound)
	})

	t.Run("несуществующий барбершоп", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{unitErr: catalogRepo.ErrUnitNotFound}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)

		_, err = uc.Select(ctx, &SelectRequest{Token: started.Token, UnitID: ptr.Ptr(int64(1))})
		assert.ErrorIs(t, err, ErrUnitNotFound)
	})

	t.Run("два выбора в одном запросе", func(t *testing.T) {
		uc, _ := newTestUseCase(&stubCatalog{}, &stubCreator{}, now)

		started, err := uc.Start(ctx)
		require.NoError(t, err)

		_, err = uc.Select(ctx, &SelectRequest{
			Token:     started.Token,
			UnitID:    ptr.Ptr(int64(1)),
			ServiceID: ptr.Ptr(int64(2)),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
