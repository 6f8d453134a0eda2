package catalog

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/catalog/models"
	"github.com/m04kA/SMC-BarberBookingService/pkg/imageurl"
)

// Service сервис каталога: барбершопы, услуги, барберы
// Данные справочные, сервис их только читает
type Service struct {
	catalogRepo CatalogRepository
	images      ImageResolver
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, images ImageResolver, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		images:      images,
		logger:      logger,
	}
}

// ListUnits получает все барбершопы, отсортированные по названию
func (s *Service) ListUnits(ctx context.Context) (*models.UnitListResponse, error) {
	s.logger.Info("ListUnits: fetching units")

	units, err := s.catalogRepo.ListUnits(ctx)
	if err != nil {
		s.logger.Error("ListUnits: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUnits - repository error: %v", ErrInternal, err)
	}

	resp := &models.UnitListResponse{
		Units: make([]*models.UnitResponse, 0, len(units)),
		Total: len(units),
	}
	for _, u := range units {
		resp.Units = append(resp.Units, models.FromDomainUnit(u, s.images.Resolve(u.PhotoPath, imageurl.KindUnit)))
	}

	s.logger.Info("ListUnits: successfully fetched %d units", len(units))
	return resp, nil
}

// ListUnitServices получает услуги, оказываемые в барбершопе
func (s *Service) ListUnitServices(ctx context.Context, unitID int64) (*models.ServiceListResponse, error) {
	s.logger.Info("ListUnitServices: fetching services for unit=%d", unitID)

	if unitID <= 0 {
		return nil, fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if _, err := s.catalogRepo.GetUnit(ctx, unitID); err != nil {
		if errors.Is(err, catalogRepo.ErrUnitNotFound) {
			s.logger.Warn("ListUnitServices: unit id=%d not found", unitID)
			return nil, ErrUnitNotFound
		}
		s.logger.Error("ListUnitServices: failed to get unit id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: ListUnitServices - repository error: %v", ErrInternal, err)
	}

	services, err := s.catalogRepo.ListServicesByUnit(ctx, unitID)
	if err != nil {
		s.logger.Error("ListUnitServices: repository error for unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: ListUnitServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListUnitServices: successfully fetched %d services for unit=%d", len(services), unitID)
	return models.FromDomainServiceList(services), nil
}

// ListAllServices получает все услуги сети, отсортированные по названию
func (s *Service) ListAllServices(ctx context.Context) (*models.ServiceListResponse, error) {
	s.logger.Info("ListAllServices: fetching services")

	services, err := s.catalogRepo.ListAllServices(ctx)
	if err != nil {
		s.logger.Error("ListAllServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAllServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListAllServices: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// ListUnitBarbers получает барберов, работающих в барбершопе
func (s *Service) ListUnitBarbers(ctx context.Context, unitID int64) (*models.BarberListResponse, error) {
	s.logger.Info("ListUnitBarbers: fetching barbers for unit=%d", unitID)

	if unitID <= 0 {
		return nil, fmt.Errorf("%w: unitID must be positive", ErrInvalidInput)
	}

	if _, err := s.catalogRepo.GetUnit(ctx, unitID); err != nil {
		if errors.Is(err, catalogRepo.ErrUnitNotFound) {
			s.logger.Warn("ListUnitBarbers: unit id=%d not found", unitID)
			return nil, ErrUnitNotFound
		}
		s.logger.Error("ListUnitBarbers: failed to get unit id=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: ListUnitBarbers - repository error: %v", ErrInternal, err)
	}

	barbers, err := s.catalogRepo.ListBarbersByUnit(ctx, unitID)
	if err != nil {
		s.logger.Error("ListUnitBarbers: repository error for unit=%d: %v", unitID, err)
		return nil, fmt.Errorf("%w: ListUnitBarbers - repository error: %v", ErrInternal, err)
	}

	resp := &models.BarberListResponse{
		Barbers: make([]*models.BarberResponse, 0, len(barbers)),
		Total:   len(barbers),
	}
	for _, b := range barbers {
		resp.Barbers = append(resp.Barbers, models.FromDomainBarber(b, s.images.Resolve(b.AvatarPath, imageurl.KindBarber)))
	}

	s.logger.Info("ListUnitBarbers: successfully fetched %d barbers for unit=%d", len(barbers), unitID)
	return resp, nil
}
