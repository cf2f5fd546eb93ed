package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paygate/access-service/internal/http/httperr"
	"github.com/paygate/access-service/internal/http/middleware"
	"github.com/paygate/access-service/internal/service"
)

// contentResponse — страница контента: email сессии и доступный материал.
type contentResponse struct {
	OK        bool   `json:"ok"`
	Email     string `json:"email"`
	Material  string `json:"material"`
	SignedURL string `json:"signedUrlEndpoint"`
}

// Content — GET /content (под сессионной охраной).
func (h *Handlers) Content(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		// Маршрут смонтирован без охраны — программная ошибка сборки роутера.
		httperr.WriteError(w, r, service.ErrUnauthorized)
		return
	}

	writeJSON(w, http.StatusOK, contentResponse{
		OK:        true,
		Email:     sess.Email,
		Material:  h.Cfg.S3.MaterialKey,
		SignedURL: "/content/material/" + h.Cfg.S3.MaterialKey,
	})
}

type materialResponse struct {
	URL string `json:"url"`
}

// Material — GET /content/material/{key} (под сессионной охраной):
// короткоживущая подписанная ссылка на объект хранилища.
func (h *Handlers) Material(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionFrom(r.Context()); !ok {
		httperr.WriteError(w, r, service.ErrUnauthorized)
		return
	}

	key := chi.URLParam(r, "key")

	url, err := h.Service.ContentURL(r.Context(), key)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, materialResponse{URL: url})
}
