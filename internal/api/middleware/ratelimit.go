package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
)

const msgTooManyRequests = "слишком много запросов, попробуйте позже"

// RateLimit ограничивает частоту запросов одного клиента.
// При недоступности хранилища лимитов запрос пропускается.
func RateLimit(limiter RateLimiter, logger Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)
			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("RateLimit: limiter error for client=%s: %v", key, err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("RateLimit: client=%s exceeded limit on %s %s", key, r.Method, r.URL.Path)
				handlers.RespondTooManyRequests(w, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		parts := strings.Split(ip, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}
