package appointments

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	profileRepo     ProfileRepository
	trinksClient    TrinksClient
	dispatcher      EventDispatcher
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	profileRepo ProfileRepository,
	trinksClient TrinksClient,
	dispatcher EventDispatcher,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		profileRepo:     profileRepo,
		trinksClient:    trinksClient,
		dispatcher:      dispatcher,
		logger:          logger,
	}
}

// GetUserAppointments получает историю записей клиента, новые сверху
func (s *Service) GetUserAppointments(ctx context.Context, customerID string) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for customer=%s", customerID)

	if customerID == "" {
		return nil, fmt.Errorf("%w: customerID is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for customer=%s: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for customer=%s",
		len(appointments), customerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetUnitDay получает записи барбершопа на день для админ-панели
// Записи возвращаются по возрастанию времени начала, с именами барбера
// и клиента. Доступно только сотрудникам (barber или admin)
func (s *Service) GetUnitDay(ctx context.Context, req *models.GetUnitDayRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUnitDay: fetching appointments for unit=%d, date=%s, actor=%s",
		req.UnitID, req.Date.Format(domain.DateFormat), req.ActorID)

	if req.UnitID <= 0 || req.Date.IsZero() {
		return nil, fmt.Errorf("%w: unitID and date are required", ErrInvalidInput)
	}

	if err := s.checkStaffAccess(ctx, req.ActorID); err != nil {
		return nil, err
	}

	appointments, err := s.appointmentRepo.GetByUnitAndDate(ctx, domain.UnitDayFilter{
		UnitID:          req.UnitID,
		Date:            req.Date,
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		s.logger.Error("GetUnitDay: repository error for unit=%d: %v", req.UnitID, err)
		return nil, fmt.Errorf("%w: GetUnitDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUnitDay: successfully fetched %d appointments for unit=%d, date=%s",
		len(appointments), req.UnitID, req.Date.Format(domain.DateFormat))
	return models.FromDomainAppointmentList(appointments), nil
}

// ToggleStatus переключает статус записи между scheduled и completed
// Отмененные записи не переключаются. Доступно только сотрудникам
func (s *Service) ToggleStatus(ctx context.Context, req *models.ToggleStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("ToggleStatus: toggling appointment id=%d by actor=%s", req.AppointmentID, req.ActorID)

	if err := s.checkStaffAccess(ctx, req.ActorID); err != nil {
		return nil, err
	}

	appointment, err := s.getAppointment(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}

	if !appointment.CanToggleStatus() {
		s.logger.Warn("ToggleStatus: appointment id=%d is cancelled, toggle rejected", req.AppointmentID)
		return nil, ErrCannotToggle
	}

	newStatus := appointment.ToggledStatus()

	if err := s.appointmentRepo.UpdateStatus(ctx, req.AppointmentID, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("ToggleStatus: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: ToggleStatus - repository error: %v", ErrInternal, err)
	}

	appointment.Status = newStatus

	// Уведомляем о завершении обслуживания; ошибки интеграции только логируются
	if newStatus == domain.StatusCompleted {
		if err := s.dispatcher.NotifyAppointmentCompleted(ctx, appointment); err != nil {
			s.logger.Error("ToggleStatus: n8n notification failed for appointment id=%d: %v", req.AppointmentID, err)
		}
	}

	s.logger.Info("ToggleStatus: appointment id=%d toggled to status=%s", req.AppointmentID, newStatus)
	return models.FromDomainAppointment(appointment), nil
}

// Cancel отменяет запись клиента
// Клиент может отменить только свою запись и только в статусе scheduled
func (s *Service) Cancel(ctx context.Context, req *models.CancelRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by customer=%s", req.AppointmentID, req.CustomerID)

	appointment, err := s.getAppointment(ctx, req.AppointmentID)
	if err != nil {
		return err
	}

	if appointment.CustomerID != req.CustomerID {
		s.logger.Warn("Cancel: access denied for customer=%s to appointment id=%d", req.CustomerID, req.AppointmentID)
		return ErrAccessDenied
	}

	if !appointment.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", req.AppointmentID, appointment.Status)
		return ErrCannotCancel
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, req.AppointmentID, domain.StatusCancelled); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", req.AppointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	appointment.Status = domain.StatusCancelled

	// Внешние системы узнают об отмене после успешного обновления
	// Ошибки интеграций не влияют на результат
	if err := s.trinksClient.CancelAppointment(ctx, strconv.FormatInt(appointment.ID, 10)); err != nil {
		s.logger.Error("Cancel: trinks cancellation failed for appointment id=%d: %v", req.AppointmentID, err)
	}
	if err := s.dispatcher.NotifyAppointmentCancelled(ctx, appointment, req.Reason); err != nil {
		s.logger.Error("Cancel: n8n notification failed for appointment id=%d: %v", req.AppointmentID, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", req.AppointmentID)
	return nil
}

// Вспомогательные методы

func (s *Service) getAppointment(ctx context.Context, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return appointment, nil
}

// checkStaffAccess проверяет, что профиль имеет роль barber или admin
func (s *Service) checkStaffAccess(ctx context.Context, actorID string) error {
	if actorID == "" {
		return fmt.Errorf("%w: actorID is required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("checkStaffAccess: profile id=%s not found", actorID)
			return ErrAccessDenied
		}
		s.logger.Error("checkStaffAccess: failed to get profile id=%s: %v", actorID, err)
		return fmt.Errorf("%w: failed to get profile: %v", ErrInternal, err)
	}

	if !profile.Role.IsStaff() {
		s.logger.Warn("checkStaffAccess: profile id=%s role=%s is not staff", actorID, profile.Role)
		return ErrAccessDenied
	}

	return nil
}
