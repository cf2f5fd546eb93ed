package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/paygate/access-service/internal/http/httperr"
	"github.com/paygate/access-service/internal/service"
)

// accessStateResponse — состояние access-токена для экрана подтверждения.
type accessStateResponse struct {
	Valid bool   `json:"valid"`
	Email string `json:"email"`
}

// AccessState — GET /access/{token}: неразрушающая проверка токена.
// Email в ответе маскируется на фронте; сам токен — достаточный секрет,
// чтобы отдать адрес подтверждения.
func (h *Handlers) AccessState(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	at, err := h.Service.AccessTokenByID(r.Context(), token)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, accessStateResponse{Valid: true, Email: at.Email})
}

type exchangeRequest struct {
	Email string `json:"email"`
}

type exchangeResponse struct {
	OK       bool   `json:"ok"`
	Redirect string `json:"redirect"`
}

// Exchange — POST /access/{token}: обмен токена на сессию.
// Email из тела должен совпасть с email покупки. Успех ставит сессионную
// cookie и возвращает адрес контентной страницы для перехода на фронте.
func (h *Handlers) Exchange(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	var in exchangeRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	issued, err := h.Service.ExchangeAccessToken(r.Context(), token, in.Email, clientInfo(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	h.setSessionCookie(w, issued.ID)
	writeJSON(w, http.StatusOK, exchangeResponse{OK: true, Redirect: "/content"})
}

// clientInfo — лёгкий отпечаток клиента: sha256-хэши IP и User-Agent.
// Сырые значения никуда не записываются.
func clientInfo(r *http.Request) service.ClientInfo {
	return service.ClientInfo{
		IPHash: hashLight(clientIP(r)),
		UAHash: hashLight(r.Header.Get("User-Agent")),
	}
}

// clientIP возвращает первый hop из X-Forwarded-For либо RemoteAddr.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}

func hashLight(value string) string {
	if value == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
