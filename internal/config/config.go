package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	App       AppConfig       `toml:"app"`
	Redis     RedisConfig     `toml:"redis"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто = stdout
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки выдачи JWT
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// TokenTTL время жизни токена
func (a AuthConfig) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// AppConfig настройки предметной области
type AppConfig struct {
	Timezone       string   `toml:"timezone"`
	PublicHolidays []string `toml:"public_holidays"` // YYYY-MM-DD
	TxMaxRetries   int      `toml:"tx_max_retries"`
}

// RedisConfig настройки Redis. Пустой адрес отключает Redis.
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Enabled проверяет, настроен ли Redis
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Address) != ""
}

// RateLimitConfig ограничение частоты попыток бронирования
type RateLimitConfig struct {
	Enabled       bool `toml:"enabled"`
	Requests      int  `toml:"requests"`
	WindowSeconds int  `toml:"window_seconds"`
}

// Window длительность окна
func (r RateLimitConfig) Window() time.Duration {
	return time.Duration(r.WindowSeconds) * time.Second
}

// Load загружает конфигурацию из TOML файла.
// Перед чтением подгружается .env (если есть), плейсхолдеры ${VAR} заменяются значениями окружения.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(os.ExpandEnv(string(data)), &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "staff_booking"
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.App.Timezone == "" {
		c.App.Timezone = "Asia/Tokyo"
	}
	if c.App.TxMaxRetries == 0 {
		c.App.TxMaxRetries = 3
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 10
	}
	if c.RateLimit.WindowSeconds == 0 {
		c.RateLimit.WindowSeconds = 60
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return errors.New("config: database.host is required")
	}
	if c.Database.DBName == "" {
		return errors.New("config: database.dbname is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("config: auth.jwt_secret is required")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("config: app.timezone %q: %w", c.App.Timezone, err)
	}
	for _, d := range c.App.PublicHolidays {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return fmt.Errorf("config: app.public_holidays: invalid date %q", d)
		}
	}
	return nil
}
