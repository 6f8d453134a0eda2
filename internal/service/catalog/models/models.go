package models

import (
	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	"github.com/m04kA/SMC-BarberBookingService/pkg/format"
)

// UnitResponse ответ с данными барбершопа
type UnitResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	PhotoURL string `json:"photoUrl"`
}

// UnitListResponse ответ со списком барбершопов
type UnitListResponse struct {
	Units []*UnitResponse `json:"units"`
	Total int             `json:"total"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceCents      int64  `json:"priceCents"`

	FormattedPrice    string `json:"formattedPrice"`    // "R$ 45,00"
	FormattedDuration string `json:"formattedDuration"` // "30min"
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []*ServiceResponse `json:"services"`
	Total    int                `json:"total"`
}

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID        int64  `json:"id"`
	ProfileID string `json:"profileId"`
	Name      string `json:"name"`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatarUrl"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []*BarberResponse `json:"barbers"`
	Total   int               `json:"total"`
}

// FromDomainUnit конвертирует domain модель в response
// photoURL подставляется снаружи: резолвинг изображений - забота сервиса
func FromDomainUnit(u *domain.Unit, photoURL string) *UnitResponse {
	return &UnitResponse{
		ID:       u.ID,
		Name:     u.Name,
		Address:  u.Address,
		City:     u.City,
		PhotoURL: photoURL,
	}
}

// FromDomainService конвертирует domain модель в response
func FromDomainService(s *domain.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:                s.ID,
		Name:              s.Name,
		DurationMinutes:   s.DurationMinutes,
		PriceCents:        s.PriceCents,
		FormattedPrice:    format.Price(s.PriceCents),
		FormattedDuration: format.Duration(s.DurationMinutes),
	}
}

// FromDomainServiceList конвертирует список domain моделей в response
func FromDomainServiceList(list []*domain.Service) *ServiceListResponse {
	services := make([]*ServiceResponse, 0, len(list))
	for _, s := range list {
		services = append(services, FromDomainService(s))
	}

	return &ServiceListResponse{
		Services: services,
		Total:    len(services),
	}
}

// FromDomainBarber конвертирует domain модель в response
func FromDomainBarber(b *domain.Barber, avatarURL string) *BarberResponse {
	return &BarberResponse{
		ID:        b.ID,
		ProfileID: b.ProfileID,
		Name:      b.Name,
		Bio:       b.Bio,
		AvatarURL: avatarURL,
	}
}
