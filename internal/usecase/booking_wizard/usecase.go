package booking_wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-BarberBookingService/pkg/types"
)

// UseCase use case мастера бронирования
// Пятишаговый конечный автомат: барбершоп -> услуга -> барбер -> дата и
// время -> подтверждение. Состояние живет на сервере в TTL-хранилище,
// ключ - uuid-токен сессии
type UseCase struct {
	drafts         DraftStore
	catalogRepo    CatalogRepository
	bookingCreator BookingCreator
	closedWeekdays []int
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	drafts DraftStore,
	catalogRepo CatalogRepository,
	bookingCreator BookingCreator,
	closedWeekdays []int,
	logger Logger,
) *UseCase {
	return &UseCase{
		drafts:         drafts,
		catalogRepo:    catalogRepo,
		bookingCreator: bookingCreator,
		closedWeekdays: closedWeekdays,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Start создает новую сессию мастера с пустым черновиком на первом шаге
func (uc *UseCase) Start(ctx context.Context) (*Response, error) {
	draft := domain.NewBookingDraft(uuid.NewString(), uc.timeProvider.Now())
	uc.drafts.Save(draft)

	uc.logger.Info("BookingWizard: started session token=%s", draft.Token)

	return newResponse(draft, ""), nil
}

// Get возвращает текущее состояние сессии мастера
// Приостановленный черновик возвращается как есть: после входа пользователь
// продолжает с шага подтверждения с теми же выборами
func (uc *UseCase) Get(ctx context.Context, token string) (*Response, error) {
	draft, err := uc.getDraft(token)
	if err != nil {
		return nil, err
	}

	return newResponse(draft, ""), nil
}

// Select применяет выбор на текущем шаге и продвигает мастер вперед
// Смена барбершопа сбрасывает услугу, барбера, дату и время; смена барбера -
// дату и время; смена даты - время. Нарушение условия шага не меняет
// состояние и возвращает ровно одно предупреждение
func (uc *UseCase) Select(ctx context.Context, req *SelectRequest) (*Response, error) {
	if err := validateSelectRequest(req); err != nil {
		uc.logger.Warn("BookingWizard: select validation failed: %v", err)
		return nil, err
	}

	draft, err := uc.getDraft(req.Token)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}

	now := uc.timeProvider.Now()

	switch {
	case req.UnitID != nil:
		return uc.selectUnit(ctx, draft, *req.UnitID, now)
	case req.ServiceID != nil:
		return uc.selectService(ctx, draft, *req.ServiceID, now)
	case req.BarberID != nil:
		return uc.selectBarber(ctx, draft, *req.BarberID, now)
	case req.Date != nil:
		return uc.selectDate(draft, *req.Date, now)
	default:
		return uc.selectTime(draft, *req.Time, now)
	}
}

// Next продвигает мастер на следующий шаг, если условие текущего выполнено
func (uc *UseCase) Next(ctx context.Context, token string) (*Response, error) {
	draft, err := uc.getDraft(token)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}

	if !draft.StepGuardSatisfied(draft.Step) {
		uc.logger.Warn("BookingWizard: guard not satisfied at step %d, token=%s", draft.Step, token)
		return newResponse(draft, warningForStep(draft.Step)), nil
	}

	if draft.Step < domain.StepConfirm {
		draft.Step++
		draft.UpdatedAt = uc.timeProvider.Now()
		uc.drafts.Save(draft)
	}

	return newResponse(draft, ""), nil
}

// Back возвращает мастер на предыдущий шаг без проверок и сброса выборов
// На первом шаге остается на месте
func (uc *UseCase) Back(ctx context.Context, token string) (*Response, error) {
	draft, err := uc.getDraft(token)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}

	if draft.Step > domain.StepSelectUnit {
		draft.Step--
		draft.UpdatedAt = uc.timeProvider.Now()
		uc.drafts.Save(draft)
	}

	return newResponse(draft, ""), nil
}

// Reset возвращает сессию к пустому черновику на первом шаге
// Идемпотентен: повторный вызов дает то же пустое состояние
func (uc *UseCase) Reset(ctx context.Context, token string) (*Response, error) {
	draft, err := uc.getDraft(token)
	if err != nil {
		return nil, err
	}

	draft.Reset(uc.timeProvider.Now())
	uc.drafts.Save(draft)

	uc.logger.Info("BookingWizard: reset session token=%s", token)

	return newResponse(draft, ""), nil
}

// Confirm подтверждает запись из полностью заполненного черновика
// Без аутентификации черновик помечается приостановленным и сохраняется:
// после входа пользователь продолжает сразу с шага подтверждения.
// При ошибке создания записи состояние остается на шаге подтверждения,
// повторная попытка - за пользователем
func (uc *UseCase) Confirm(ctx context.Context, req *ConfirmRequest) (*Response, error) {
	draft, err := uc.getDraft(req.Token)
	if err != nil {
		return nil, err
	}

	if draft.Submitted {
		return nil, ErrAlreadySubmitted
	}

	if !draft.IsComplete() {
		uc.logger.Warn("BookingWizard: confirm on incomplete draft, token=%s, step=%d", req.Token, draft.Step)
		return newResponse(draft, WarningIncompleteDraft), nil
	}

	now := uc.timeProvider.Now()

	// Прерывание на аутентификацию: черновик целиком сохраняется
	// и ждет возврата пользователя
	if req.CustomerID == "" {
		draft.Suspended = true
		draft.Step = domain.StepConfirm
		draft.UpdatedAt = now
		uc.drafts.Save(draft)

		uc.logger.Info("BookingWizard: suspended for authentication, token=%s", req.Token)

		return nil, ErrAuthenticationRequired
	}

	// Возобновление после входа
	draft.Suspended = false
	draft.Step = domain.StepConfirm
	draft.UpdatedAt = now

	created, err := uc.bookingCreator.Execute(ctx, &create_booking.Request{
		CustomerID: req.CustomerID,
		UnitID:     *draft.UnitID,
		ServiceID:  *draft.ServiceID,
		BarberID:   *draft.BarberID,
		Date:       *draft.Date,
		StartTime:  *draft.Time,
	})
	if err != nil {
		// Состояние остается на шаге подтверждения, submit можно повторить
		uc.drafts.Save(draft)
		uc.logger.Warn("BookingWizard: booking creation failed, token=%s: %v", req.Token, err)
		return nil, err
	}

	draft.Submitted = true
	draft.AppointmentID = &created.ID
	draft.UpdatedAt = uc.timeProvider.Now()
	uc.drafts.Save(draft)

	uc.logger.Info("BookingWizard: submitted, token=%s, appointment id=%d", req.Token, created.ID)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) selectUnit(ctx context.Context, draft *domain.BookingDraft, unitID int64, now time.Time) (*Response, error) {
	if _, err := uc.catalogRepo.GetUnit(ctx, unitID); err != nil {
		if errors.Is(err, catalogRepo.ErrUnitNotFound) {
			return nil, ErrUnitNotFound
		}
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// Смена барбершопа инвалидирует услугу и все, что ниже:
	// списки услуг и барберов зависят от барбершопа
	if draft.UnitID == nil || *draft.UnitID != unitID {
		draft.ClearFromService()
	}

	draft.UnitID = &unitID
	draft.Step = domain.StepSelectService
	draft.UpdatedAt = now
	uc.drafts.Save(draft)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) selectService(ctx context.Context, draft *domain.BookingDraft, serviceID int64, now time.Time) (*Response, error) {
	if draft.UnitID == nil {
		return newResponse(draft, WarningSelectUnit), nil
	}

	if _, err := uc.catalogRepo.GetService(ctx, *draft.UnitID, serviceID); err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	if draft.ServiceID == nil || *draft.ServiceID != serviceID {
		draft.ClearFromBarber()
	}

	draft.ServiceID = &serviceID
	draft.Step = domain.StepSelectBarber
	draft.UpdatedAt = now
	uc.drafts.Save(draft)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) selectBarber(ctx context.Context, draft *domain.BookingDraft, barberID int64, now time.Time) (*Response, error) {
	if draft.UnitID == nil {
		return newResponse(draft, WarningSelectUnit), nil
	}
	if draft.ServiceID == nil {
		return newResponse(draft, WarningSelectService), nil
	}

	if _, err := uc.catalogRepo.GetBarber(ctx, *draft.UnitID, barberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// Смена барбера инвалидирует дату и время: сетка слотов у каждого своя
	if draft.BarberID == nil || *draft.BarberID != barberID {
		draft.ClearFromDate()
	}

	draft.BarberID = &barberID
	draft.Step = domain.StepSelectDateTime
	draft.UpdatedAt = now
	uc.drafts.Save(draft)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) selectDate(draft *domain.BookingDraft, date time.Time, now time.Time) (*Response, error) {
	if draft.BarberID == nil {
		return newResponse(draft, WarningSelectBarber), nil
	}

	if isDateInPast(date, now) || isClosedWeekday(date, uc.closedWeekdays) {
		return newResponse(draft, WarningDateUnavailable), nil
	}

	// Смена даты сбрасывает выбранное время: сетка пересчитывается
	if draft.Date == nil || !isSameDay(*draft.Date, date) {
		draft.Time = nil
	}

	draft.Date = &date
	draft.Step = domain.StepSelectDateTime
	draft.UpdatedAt = now
	uc.drafts.Save(draft)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) selectTime(draft *domain.BookingDraft, t types.TimeString, now time.Time) (*Response, error) {
	if draft.Date == nil {
		return newResponse(draft, WarningSelectDateFirst), nil
	}

	draft.Time = &t
	draft.Step = domain.StepConfirm
	draft.UpdatedAt = now
	uc.drafts.Save(draft)

	return newResponse(draft, ""), nil
}

func (uc *UseCase) getDraft(token string) (*domain.BookingDraft, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	draft, err := uc.drafts.Get(token)
	if err != nil {
		return nil, ErrDraftNotFound
	}

	return draft, nil
}

// warningForStep возвращает предупреждение о невыполненном условии шага
func warningForStep(step domain.WizardStep) string {
	switch step {
	case domain.StepSelectUnit:
		return WarningSelectUnit
	case domain.StepSelectService:
		return WarningSelectService
	case domain.StepSelectBarber:
		return WarningSelectBarber
	case domain.StepSelectDateTime:
		return WarningSelectDateTime
	default:
		return WarningIncompleteDraft
	}
}
