package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения сетки слотов барбера на день
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	hours           domain.BusinessHours
	closedWeekdays  []int
	intervalMinutes int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	appointmentRepo AppointmentRepository,
	hours domain.BusinessHours,
	closedWeekdays []int,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		hours:           hours,
		closedWeekdays:  closedWeekdays,
		intervalMinutes: intervalMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки слотов
// Сетка пересчитывается целиком при каждом вызове: любое изменение даты,
// барбера или набора записей требует повторного запроса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: unit=%d, barber=%d, date=%s",
		req.UnitID, req.BarberID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование барбершопа
	if _, err := uc.catalogRepo.GetUnit(ctx, req.UnitID); err != nil {
		if errors.Is(err, catalogRepo.ErrUnitNotFound) {
			uc.logger.Warn("GetAvailableSlots: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// 3. Проверяем, что барбер работает в этом барбершопе
	if _, err := uc.catalogRepo.GetBarber(ctx, req.UnitID, req.BarberID); err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("GetAvailableSlots: barber id=%d not found in unit id=%d", req.BarberID, req.UnitID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()

	// 4. Прошедшая дата или выходной день - пустая сетка с признаком closed
	if isDateInPast(req.Date, now) || isClosedWeekday(req.Date, uc.closedWeekdays) {
		uc.logger.Info("GetAvailableSlots: unit=%d is closed on %s", req.UnitID, req.Date.Format(domain.DateFormat))
		return &Response{
			UnitID:          req.UnitID,
			BarberID:        req.BarberID,
			Date:            req.Date,
			Closed:          true,
			IntervalMinutes: uc.intervalMinutes,
			Slots:           []domain.Slot{},
		}, nil
	}

	// 5. Получаем занятые интервалы барбера на дату
	booked, err := uc.appointmentRepo.GetBookedIntervals(ctx, req.BarberID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
	}

	// 6. Считаем сетку слотов
	slots, err := computeSlots(uc.hours, uc.intervalMinutes, req.Date, now, booked)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: computed %d slots for unit=%d, barber=%d, date=%s",
		len(slots), req.UnitID, req.BarberID, req.Date.Format(domain.DateFormat))

	return &Response{
		UnitID:          req.UnitID,
		BarberID:        req.BarberID,
		Date:            req.Date,
		IntervalMinutes: uc.intervalMinutes,
		Slots:           slots,
	}, nil
}
