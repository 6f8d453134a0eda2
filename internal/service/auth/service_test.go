package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBookingService/internal/domain"
	profileRepo "github.com/m04kA/SMC-BarberBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-BarberBookingService/internal/integrations/authservice"
	"github.com/m04kA/SMC-BarberBookingService/internal/service/auth/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubAuthClient struct {
	signUpErr  error
	signInErr  error
	signOutErr error
}

func (s *stubAuthClient) SignUp(ctx context.Context, email, password string) (*authservice.Identity, error) {
	if s.signUpErr != nil {
		return nil, s.signUpErr
	}
	return &authservice.Identity{ID: "identity-1", Email: email}, nil
}

func (s *stubAuthClient) SignIn(ctx context.Context, email, password string) (*authservice.Session, error) {
	if s.signInErr != nil {
		return nil, s.signInErr
	}
	return &authservice.Session{
		AccessToken: "token-abc",
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        authservice.Identity{ID: "identity-1", Email: email},
	}, nil
}

func (s *stubAuthClient) SignOut(ctx context.Context, accessToken string) error {
	return s.signOutErr
}

func (s *stubAuthClient) GetUser(ctx context.Context, accessToken string) (*authservice.Identity, error) {
	return &authservice.Identity{ID: "identity-1"}, nil
}

type stubProfiles struct {
	createErr error
	profiles  map[string]*domain.Profile
	created   []*domain.Profile
}

func newStubProfiles() *stubProfiles {
	return &stubProfiles{profiles: make(map[string]*domain.Profile)}
}

func (s *stubProfiles) Create(ctx context.Context, p *domain.Profile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.profiles[p.ID] = p
	s.created = append(s.created, p)
	return nil
}

func (s *stubProfiles) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return p, nil
}

type stubDispatcher struct {
	customers int
}

func (s *stubDispatcher) NotifyCustomerCreated(ctx context.Context, profile *domain.Profile) error {
	s.customers++
	return nil
}

func signUpRequest() *models.SignUpRequest {
	return &models.SignUpRequest{
		Email:    "joao@example.com",
		Password: "secret1",
		FullName: "João Silva",
		Phone:    "(11) 99999-1111",
	}
}

func TestService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("регистрация создает профиль клиента и сессию", func(t *testing.T) {
		profiles := newStubProfiles()
		disp := &stubDispatcher{}
		svc := NewService(&stubAuthClient{}, profiles, disp, nopLogger{})

		resp, err := svc.SignUp(ctx, signUpRequest())
		require.NoError(t, err)

		assert.Equal(t, "token-abc", resp.AccessToken)
		assert.Equal(t, "identity-1", resp.UserID)
		require.NotNil(t, resp.Profile)
		assert.Equal(t, "customer", resp.Profile.Role)
		assert.False(t, resp.Profile.IsStaff)

		require.Len(t, profiles.created, 1)
		assert.Equal(t, domain.RoleCustomer, profiles.created[0].Role)
		assert.Equal(t, 1, disp.customers)
	})

	t.Run("ошибка создания профиля не отменяет регистрацию", func(t *testing.T) {
		profiles := newStubProfiles()
		profiles.createErr = assert.AnError
		disp := &stubDispatcher{}
		svc := NewService(&stubAuthClient{}, profiles, disp, nopLogger{})

		resp, err := svc.SignUp(ctx, signUpRequest())
		require.NoError(t, err)

		assert.Equal(t, "token-abc", resp.AccessToken)
		assert.Nil(t, resp.Profile)
		assert.Zero(t, disp.customers)
	})

	t.Run("занятый email", func(t *testing.T) {
		svc := NewService(&stubAuthClient{signUpErr: authservice.ErrEmailTaken}, newStubProfiles(), &stubDispatcher{}, nopLogger{})

		_, err := svc.SignUp(ctx, signUpRequest())
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("короткий пароль", func(t *testing.T) {
		svc := NewService(&stubAuthClient{}, newStubProfiles(), &stubDispatcher{}, nopLogger{})

		req := signUpRequest()
		req.Password = "123"

		_, err := svc.SignUp(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("пустое имя", func(t *testing.T) {
		svc := NewService(&stubAuthClient{}, newStubProfiles(), &stubDispatcher{}, nopLogger{})

		req := signUpRequest()
		req.FullName = "   "

		_, err := svc.SignUp(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("вход с профилем", func(t *testing.T) {
		profiles := newStubProfiles()
		profiles.profiles["identity-1"] = &domain.Profile{ID: "identity-1", FullName: "João Silva", Role: domain.RoleAdmin}
		svc := NewService(&stubAuthClient{}, profiles, &stubDispatcher{}, nopLogger{})

		resp, err := svc.SignIn(ctx, &models.SignInRequest{Email: "joao@example.com", Password: "secret1"})
		require.NoError(t, err)

		require.NotNil(t, resp.Profile)
		assert.True(t, resp.Profile.IsStaff)
	})

	t.Run("вход без профиля допустим", func(t *testing.T) {
		svc := NewService(&stubAuthClient{}, newStubProfiles(), &stubDispatcher{}, nopLogger{})

		resp, err := svc.SignIn(ctx, &models.SignInRequest{Email: "joao@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Nil(t, resp.Profile)
	})

	t.Run("неверные учетные данные", func(t *testing.T) {
		svc := NewService(&stubAuthClient{signInErr: authservice.ErrInvalidCredentials}, newStubProfiles(), &stubDispatcher{}, nopLogger{})

		_, err := svc.SignIn(ctx, &models.SignInRequest{Email: "joao@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_GetProfile(t *testing.T) {
	ctx := context.Background()

	profiles := newStubProfiles()
	profiles.profiles["identity-1"] = &domain.Profile{ID: "identity-1", Role: domain.RoleBarber}
	svc := NewService(&stubAuthClient{}, profiles, &stubDispatcher{}, nopLogger{})

	resp, err := svc.GetProfile(ctx, "identity-1")
	require.NoError(t, err)
	assert.True(t, resp.IsStaff)

	_, err = svc.GetProfile(ctx, "ghost")
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
