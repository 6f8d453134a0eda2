package authservice

// Identity идентичность пользователя в auth-бэкенде
type Identity struct {
	ID    string `json:"id"` // uuid
	Email string `json:"email"`
}

// Session активная сессия после успешного входа
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         Identity `json:"user"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Message string `json:"msg"`
	Error   string `json:"error_description"`
}
