package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

// TokenParser проверяет bearer токен
type TokenParser interface {
	ParseToken(raw string) (domain.Principal, error)
}

// RateLimiter ограничитель частоты запросов по ключу клиента
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Metrics HTTP метрики
type Metrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Middleware обертка http.Handler
type Middleware func(http.Handler) http.Handler
