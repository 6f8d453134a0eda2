package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, читается один раз при старте из config.toml
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Database    DatabaseConfig    `toml:"database"`
	Logs        LogsConfig        `toml:"logs"`
	Metrics     MetricsConfig     `toml:"metrics"`
	App         AppConfig         `toml:"app"`
	AuthService AuthServiceConfig `toml:"auth_service"`
	Storage     StorageConfig     `toml:"storage"`
	Drafts      DraftsConfig      `toml:"drafts"`
	Trinks      TrinksConfig      `toml:"trinks"`
	N8N         N8NConfig         `toml:"n8n"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к Postgres
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения к Postgres
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AppConfig бизнес-настройки барбершопа
// Применяются ко всем юнитам сети; читаются один раз при старте
type AppConfig struct {
	Name                string `toml:"name"`
	BusinessHoursStart  int    `toml:"business_hours_start"` // час открытия (24h)
	BusinessHoursEnd    int    `toml:"business_hours_end"`   // час закрытия (24h), не включается
	ClosedWeekdays      []int  `toml:"closed_weekdays"`      // 0 = воскресенье ... 6 = суббота
	SlotIntervalMinutes int    `toml:"slot_interval_minutes"`
}

// IsClosedOn возвращает true, если день недели входит в выходные сети
func (a *AppConfig) IsClosedOn(weekday int) bool {
	for _, d := range a.ClosedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// AuthServiceConfig настройки интеграции с auth-бэкендом
type AuthServiceConfig struct {
	URL       string `toml:"url"`
	Timeout   int    `toml:"timeout"`
	JWTSecret string `toml:"jwt_secret"` // общий HMAC секрет для верификации access-токенов
}

// StorageConfig настройки object storage для изображений
type StorageConfig struct {
	PublicBaseURL string `toml:"public_base_url"`
	Bucket        string `toml:"bucket"`
}

// DraftsConfig настройки хранилища черновиков бронирования
type DraftsConfig struct {
	TTLMinutes int `toml:"ttl_minutes"`
}

// TrinksConfig настройки интеграции с Trinks (внешняя система управления)
// По умолчанию выключена - клиент работает как заглушка
type TrinksConfig struct {
	Enabled         bool   `toml:"enabled"`
	BaseURL         string `toml:"base_url"`
	APIToken        string `toml:"api_token"`
	EstablishmentID string `toml:"establishment_id"`
	Timeout         int    `toml:"timeout"`
}

// N8NConfig настройки интеграции с N8N (автоматизация workflow)
// По умолчанию выключена - диспетчер работает как заглушка
type N8NConfig struct {
	Enabled  bool              `toml:"enabled"`
	BaseURL  string            `toml:"base_url"`
	Timeout  int               `toml:"timeout"`
	Webhooks map[string]string `toml:"webhooks"` // имя события -> путь вебхука
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}

	if c.App.BusinessHoursStart < 0 || c.App.BusinessHoursStart > 23 {
		return fmt.Errorf("config: app.business_hours_start must be within [0, 23]")
	}
	if c.App.BusinessHoursEnd < 1 || c.App.BusinessHoursEnd > 24 {
		return fmt.Errorf("config: app.business_hours_end must be within [1, 24]")
	}
	if c.App.BusinessHoursStart >= c.App.BusinessHoursEnd {
		return fmt.Errorf("config: app.business_hours_start must be before app.business_hours_end")
	}
	if c.App.SlotIntervalMinutes <= 0 {
		return fmt.Errorf("config: app.slot_interval_minutes must be positive")
	}
	for _, d := range c.App.ClosedWeekdays {
		if d < 0 || d > 6 {
			return fmt.Errorf("config: app.closed_weekdays values must be within [0, 6]")
		}
	}

	if c.AuthService.JWTSecret == "" {
		return fmt.Errorf("config: auth_service.jwt_secret is required")
	}

	if c.Drafts.TTLMinutes <= 0 {
		return fmt.Errorf("config: drafts.ttl_minutes must be positive")
	}

	return nil
}
