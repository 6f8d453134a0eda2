package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
)

// UseCase use case для создания записи к барберу
type UseCase struct {
	catalogRepo     CatalogRepository
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
	trinksClient    TrinksClient
	dispatcher      EventDispatcher
	txManager       TransactionManager
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
	profileRepo ProfileRepository,
	trinksClient TrinksClient,
	dispatcher EventDispatcher,
	txManager TransactionManager,
	hours domain.BusinessHours,
	closedWeekdays []int,
	intervalMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:     catalogRepo,
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		trinksClient:    trinksClient,
		dispatcher:      dispatcher,
		txManager:       txManager,
		hours:           hours,
		closedWeekdays:  closedWeekdays,
		intervalMinutes: intervalMinutes,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию с блокировкой занятых интервалов
// барбера, чтобы две конкурентные попытки не заняли один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%s, unit=%d, service=%d, barber=%d, date=%s, time=%s",
		req.CustomerID, req.UnitID, req.ServiceID, req.BarberID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем существование барбершопа
	unit, err := uc.catalogRepo.GetUnit(ctx, req.UnitID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrUnitNotFound) {
			uc.logger.Warn("CreateBooking: unit id=%d not found", req.UnitID)
			return nil, ErrUnitNotFound
		}
		uc.logger.Error("CreateBooking: failed to get unit id=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: failed to get unit: %v", ErrInternal, err)
	}

	// 3. Проверяем, что услуга оказывается в этом барбершопе
	service, err := uc.catalogRepo.GetService(ctx, req.UnitID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found in unit id=%d", req.ServiceID, req.UnitID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Проверяем, что барбер работает в этом барбершопе
	barber, err := uc.catalogRepo.GetBarber(ctx, req.UnitID, req.BarberID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrBarberNotFound) {
			uc.logger.Warn("CreateBooking: barber id=%d not found in unit id=%d", req.BarberID, req.UnitID)
			return nil, ErrBarberNotFound
		}
		uc.logger.Error("CreateBooking: failed to get barber id=%d: %v", req.BarberID, err)
		return nil, fmt.Errorf("%w: failed to get barber: %v", ErrInternal, err)
	}

	// 5. Проверяем существование профиля клиента
	customer, err := uc.profileRepo.GetByID(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: customer profile id=%s not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get customer profile id=%s: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: failed to get customer profile: %v", ErrInternal, err)
	}

	// 6. Валидация даты и времени относительно расписания
	if err := validateSchedule(req, now, uc.hours, uc.closedWeekdays, uc.intervalMinutes); err != nil {
		uc.logger.Warn("CreateBooking: schedule validation failed: %v", err)
		return nil, err
	}

	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Перечитываем занятые интервалы барбера с блокировкой (FOR UPDATE)
		booked, err := uc.appointmentRepo.GetBookedIntervals(txCtx, req.BarberID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked intervals: %v", err)
			return fmt.Errorf("%w: failed to get booked intervals: %v", ErrInternal, err)
		}

		// 7.2. Проверяем, что интервал новой записи не пересекается с занятыми
		if hasOverlap(startMinutes, service.DurationMinutes, booked) {
			uc.logger.Warn("CreateBooking: slot %s on %s is already taken for barber=%d",
				req.StartTime, req.Date.Format(domain.DateFormat), req.BarberID)
			return ErrSlotTaken
		}

		// 7.3. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			UnitID:          req.UnitID,
			CustomerID:      req.CustomerID,
			BarberID:        req.BarberID,
			ServiceID:       req.ServiceID,
			AppointmentDate: req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusScheduled,
			// Денормализация данных услуги
			ServiceName:       service.Name,
			ServicePriceCents: service.PriceCents,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	// 8. Уведомляем внешние системы после коммита
	// Ошибки интеграций не влияют на результат - запись уже создана
	uc.notifyIntegrations(ctx, result, unit, barber, customer)

	return &Response{
		ID:                result.ID,
		CustomerID:        result.CustomerID,
		UnitID:            result.UnitID,
		ServiceID:         result.ServiceID,
		BarberID:          result.BarberID,
		Date:              result.AppointmentDate,
		StartTime:         result.StartTime,
		DurationMinutes:   result.DurationMinutes,
		Status:            string(result.Status),
		ServiceName:       result.ServiceName,
		ServicePriceCents: result.ServicePriceCents,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}

// notifyIntegrations отправляет созданную запись во внешние системы
// Все ошибки только логируются
func (uc *UseCase) notifyIntegrations(
	ctx context.Context,
	appointment *domain.Appointment,
	unit *domain.Unit,
	barber *domain.Barber,
	customer *domain.Profile,
) {
	// Дополняем запись display-данными для полезной нагрузки событий
	enriched := *appointment
	enriched.UnitName = unit.Name
	enriched.BarberName = barber.Name
	enriched.CustomerName = customer.FullName
	enriched.CustomerPhone = customer.Phone

	if _, err := uc.trinksClient.SyncAppointment(ctx, &enriched); err != nil {
		uc.logger.Error("CreateBooking: trinks sync failed for appointment id=%d: %v", appointment.ID, err)
	}

	if err := uc.dispatcher.NotifyNewAppointment(ctx, &enriched); err != nil {
		uc.logger.Error("CreateBooking: n8n notification failed for appointment id=%d: %v", appointment.ID, err)
	}
}
