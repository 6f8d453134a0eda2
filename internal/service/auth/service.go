package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/auth/models"
)

const minPasswordLength = 6

// Service сервис аутентификации и профилей
// Идентичности живут в auth-бэкенде, профили - в локальной БД
type Service struct {
	authClient  AuthClient
	profileRepo ProfileRepository
	dispatcher  EventDispatcher
	logger      Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(authClient AuthClient, profileRepo ProfileRepository, dispatcher EventDispatcher, logger Logger) *Service {
	return &Service{
		authClient:  authClient,
		profileRepo: profileRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// SignUp регистрирует нового клиента: идентичность в auth-бэкенде
// плюс локальный профиль с ролью customer
// Ошибка создания профиля не отменяет регистрацию - идентичность уже
// существует, профиль досоздается поддержкой
func (s *Service) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.SessionResponse, error) {
	s.logger.Info("SignUp: registering email=%s", req.Email)

	if err := validateSignUp(req); err != nil {
		s.logger.Warn("SignUp: validation failed: %v", err)
		return nil, err
	}

	identity, err := s.authClient.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrEmailTaken) {
			s.logger.Warn("SignUp: email=%s is already taken", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("SignUp: auth backend error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SignUp - auth backend error: %v", ErrInternal, err)
	}

	profile := &domain.Profile{
		ID:       identity.ID,
		FullName: strings.TrimSpace(req.FullName),
		Phone:    strings.TrimSpace(req.Phone),
		Role:     domain.RoleCustomer,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		s.logger.Error("SignUp: failed to create profile for identity=%s: %v", identity.ID, err)
	} else {
		if err := s.dispatcher.NotifyCustomerCreated(ctx, profile); err != nil {
			s.logger.Error("SignUp: n8n notification failed for profile=%s: %v", identity.ID, err)
		}
	}

	// Auth-бэкенд не возвращает сессию при регистрации - входим сразу
	session, err := s.authClient.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		s.logger.Error("SignUp: post-registration sign in failed for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SignUp - post-registration sign in failed: %v", ErrInternal, err)
	}

	s.logger.Info("SignUp: successfully registered identity=%s", identity.ID)
	return s.sessionResponse(ctx, session), nil
}

// SignIn выполняет вход и возвращает сессию с профилем
func (s *Service) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SessionResponse, error) {
	s.logger.Info("SignIn: email=%s", req.Email)

	if req.Email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	session, err := s.authClient.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			s.logger.Warn("SignIn: invalid credentials for email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("SignIn: auth backend error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: SignIn - auth backend error: %v", ErrInternal, err)
	}

	s.logger.Info("SignIn: successful for identity=%s", session.User.ID)
	return s.sessionResponse(ctx, session), nil
}

// SignOut завершает сессию
func (s *Service) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return fmt.Errorf("%w: access token is required", ErrInvalidInput)
	}

	if err := s.authClient.SignOut(ctx, accessToken); err != nil {
		if errors.Is(err, authservice.ErrUnauthorized) {
			return ErrUnauthorized
		}
		s.logger.Error("SignOut: auth backend error: %v", err)
		return fmt.Errorf("%w: SignOut - auth backend error: %v", ErrInternal, err)
	}

	return nil
}

// GetProfile возвращает профиль идентичности
func (s *Service) GetProfile(ctx context.Context, identityID string) (*models.ProfileResponse, error) {
	if identityID == "" {
		return nil, fmt.Errorf("%w: identityID is required", ErrInvalidInput)
	}

	profile, err := s.profileRepo.GetByID(ctx, identityID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("GetProfile: profile id=%s not found", identityID)
			return nil, ErrProfileNotFound
		}
		s.logger.Error("GetProfile: repository error for id=%s: %v", identityID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// sessionResponse собирает ответ сессии, подтягивая профиль
// Отсутствие профиля не считается ошибкой входа
func (s *Service) sessionResponse(ctx context.Context, session *authservice.Session) *models.SessionResponse {
	resp := &models.SessionResponse{
		AccessToken:  session.AccessToken,
		TokenType:    session.TokenType,
		ExpiresIn:    session.ExpiresIn,
		RefreshToken: session.RefreshToken,
		UserID:       session.User.ID,
		Email:        session.User.Email,
	}

	profile, err := s.profileRepo.GetByID(ctx, session.User.ID)
	if err != nil {
		if !errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Error("sessionResponse: failed to get profile id=%s: %v", session.User.ID, err)
		}
		return resp
	}

	resp.Profile = models.FromDomainProfile(profile)
	return resp
}

// validateSignUp валидирует данные регистрации
func validateSignUp(req *models.SignUpRequest) error {
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}

	if len(req.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return fmt.Errorf("%w: full name is required", ErrInvalidInput)
	}
	if len(fullName) > domain.MaxFullNameLength {
		return fmt.Errorf("%w: full name is too long", ErrInvalidInput)
	}

	if len(strings.TrimSpace(req.Phone)) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is too long", ErrInvalidInput)
	}

	return nil
}
