package handlers

import (
	"net/http"

	"github.com/paygate/access-service/internal/http/httperr"
)

type logoutResponse struct {
	OK bool `json:"ok"`
}

// Logout — POST /logout: удаляет сессию и гасит cookie.
// Без cookie и с уже удалённой сессией — тот же успешный ответ.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	var sid string
	if cookie, err := r.Cookie(h.Cfg.Session.CookieName); err == nil {
		sid = cookie.Value
	}

	if err := h.Service.Logout(r.Context(), sid); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.clearSessionCookie(w)
	writeJSON(w, http.StatusOK, logoutResponse{OK: true})
}
