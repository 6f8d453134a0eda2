package models

import "github.com/m04kA/SMC-BarberBookingService/internal/domain"

// Request модели

// SignUpRequest запрос регистрации нового клиента
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

// SignInRequest запрос входа
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response модели

// ProfileResponse ответ с данными профиля
type ProfileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
	IsStaff  bool   `json:"isStaff"`
}

// SessionResponse ответ с данными сессии
// Profile может быть nil, если профиль идентичности еще не создан
type SessionResponse struct {
	AccessToken  string           `json:"accessToken"`
	TokenType    string           `json:"tokenType"`
	ExpiresIn    int              `json:"expiresIn"`
	RefreshToken string           `json:"refreshToken,omitempty"`
	UserID       string           `json:"userId"`
	Email        string           `json:"email"`
	Profile      *ProfileResponse `json:"profile,omitempty"`
}

// FromDomainProfile конвертирует domain модель в response
func FromDomainProfile(p *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Phone:    p.Phone,
		Role:     string(p.Role),
		IsStaff:  p.Role.IsStaff(),
	}
}
