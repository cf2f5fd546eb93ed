package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/paygate/access-service/internal/service"
)

// recoverRequest — тело запроса восстановления.
type recoverRequest struct {
	Email string `json:"email"`
}

// genericRecoverMessage — единственный текст ответа на запрос восстановления,
// независимо от того, существует ли адрес (анти-перечисление).
const genericRecoverMessage = "Если этот email есть в покупках, письмо со ссылкой уже в пути."

type recoverResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// RecoverRequest — POST /access/recover.
// Ответ всегда один и тот же: битый JSON, незнакомый и неактивный email
// снаружи неразличимы.
func (h *Handlers) RecoverRequest(w http.ResponseWriter, r *http.Request) {
	var in recoverRequest
	if err := decodeStrict(r, &in); err == nil {
		h.Service.RequestRecovery(r.Context(), in.Email)
	}

	writeJSON(w, http.StatusOK, recoverResponse{OK: true, Message: genericRecoverMessage})
}

// RecoverRedeem — GET /access/recover/{token}: переход по ссылке из письма.
// Терминальные состояния уходят редиректом на фронт с маркером статуса;
// детали сбоев наружу не попадают.
func (h *Handlers) RecoverRedeem(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	issued, err := h.Service.RedeemRecoverToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenNotFound):
			h.redirectStatus(w, r, "expired")
		case errors.Is(err, service.ErrEntitlementRevoked):
			h.redirectStatus(w, r, "denied")
		default:
			h.redirectStatus(w, r, "error")
		}
		return
	}

	h.setSessionCookie(w, issued.ID)
	http.Redirect(w, r, h.appURL("/content"), http.StatusFound)
}

// redirectStatus отправляет на публичный фронт с маркером исхода.
func (h *Handlers) redirectStatus(w http.ResponseWriter, r *http.Request, status string) {
	http.Redirect(w, r, h.appURL("/")+"?status="+url.QueryEscape(status), http.StatusFound)
}

// appURL собирает адрес страницы фронта.
func (h *Handlers) appURL(path string) string {
	return strings.TrimRight(h.Cfg.App.PublicBaseURL, "/") + path
}
