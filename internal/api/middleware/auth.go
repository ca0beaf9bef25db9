package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-StaffBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StaffBooking/internal/domain"
)

type ctxKey int

const (
	ctxKeyPrincipal ctxKey = iota
	ctxKeyRequestID
)

const (
	bearerPrefix = "Bearer "

	msgMissingToken = "требуется авторизация"
	msgInvalidToken = "недействительный токен"
)

// Auth требует заголовок Authorization: Bearer <token> и кладет principal в контекст
func Auth(parser TokenParser, logger Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := parser.ParseToken(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				logger.Warn("Auth: rejected token for %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}

// WithPrincipal кладет principal в контекст
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// GetPrincipal достает principal, положенный Auth
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(domain.Principal)
	return p, ok
}
