package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/paygate/access-service/internal/http/httperr"
	"github.com/paygate/access-service/internal/service"
)

// AdminGuard охраняет административные эндпойнты bearer-токеном.
// Пустой сконфигурированный токен закрывает эндпойнты целиком (fail closed).
func AdminGuard(token string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := bearerToken(r)
			if token == "" || got == "" ||
				subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				httperr.WriteError(w, r, service.ErrUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken извлекает Bearer-токен из Authorization.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) <= len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
