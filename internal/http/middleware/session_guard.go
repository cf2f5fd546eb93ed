package middleware

import (
	"context"
	"net/http"

	"github.com/paygate/access-service/internal/http/httperr"
	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/service"
)

// SessionResolver — часть сервиса, нужная охране: проверка сессии по id.
type SessionResolver interface {
	SessionByID(ctx context.Context, id string) (*models.Session, error)
}

// SessionGuard охраняет контентные эндпойнты сессионной cookie.
// Отсутствующая cookie, неизвестная и истёкшая сессия — один и тот же 401:
// охрана не сообщает, есть ли такая сессия вообще.
func SessionGuard(resolver SessionResolver, cookieName string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				httperr.WriteError(w, r, service.ErrUnauthorized)
				return
			}

			sess, err := resolver.SessionByID(r.Context(), cookie.Value)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxSession, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionFrom возвращает сессию, положенную в контекст охраной.
func SessionFrom(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(ctxSession).(*models.Session)
	return sess, ok
}
