package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config содержит конфигурацию сервера, загружаемую из окружения
type Config struct {
	// Addr адрес, на котором слушает HTTP сервер
	Addr string `env:"WEEKENDLY_ADDR" envDefault:":8080"`

	// DBPath путь к файлу SQLite базы данных
	DBPath string `env:"WEEKENDLY_DB_PATH" envDefault:"weekendly.db"`

	// JWTSecret секрет для подписи access tokens, обязателен
	JWTSecret string `env:"WEEKENDLY_JWT_SECRET"`

	// AccessTokenTTL время жизни access token
	AccessTokenTTL time.Duration `env:"WEEKENDLY_ACCESS_TOKEN_TTL" envDefault:"24h"`

	// ShutdownTimeout сколько ждать завершения активных запросов при остановке
	ShutdownTimeout time.Duration `env:"WEEKENDLY_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// LogLevel уровень логирования: debug, info, warn, error
	LogLevel string `env:"WEEKENDLY_LOG_LEVEL" envDefault:"info"`

	// AuthRateLimit запросов в минуту на IP для auth endpoints
	AuthRateLimit int `env:"WEEKENDLY_AUTH_RATE_LIMIT" envDefault:"30"`
}

// Load парсит конфигурацию из переменных окружения
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("WEEKENDLY_JWT_SECRET is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("WEEKENDLY_JWT_SECRET must be at least 32 characters")
	}
	if c.AuthRateLimit <= 0 {
		return errors.New("WEEKENDLY_AUTH_RATE_LIMIT must be positive")
	}
	return nil
}
