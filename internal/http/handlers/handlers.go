package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/internal/service"
	"github.com/paygate/access-service/internal/storage"
)

// Handlers агрегирует зависимости (сервисный слой и конфигурация cookie/URL).
type Handlers struct {
	Service *service.Service
	Cfg     *config.Config
}

func New(svc *service.Service, cfg *config.Config) *Handlers {
	return &Handlers{Service: svc, Cfg: cfg}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через httperr.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// setSessionCookie ставит сессионную cookie: httpOnly, SameSite=Lax,
// Secure в prod, время жизни равно TTL сессии.
// Неположительный TTL заменяется дефолтом хранилища: cookie и запись
// сессии должны жить одинаково.
func (h *Handlers) setSessionCookie(w http.ResponseWriter, sessionID string) {
	ttl := h.Cfg.Session.TTL
	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(ttl / time.Second),
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
}

// clearSessionCookie немедленно гасит сессионную cookie.
func (h *Handlers) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteLaxMode,
	})
}
