package handlers

import (
	"net/http"
	"time"
)

type healthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	TS      int64  `json:"ts"`
}

// Healthz — GET /healthz на публичном слушателе (внешние проверки доступности).
func (h *Handlers) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		OK:      true,
		Service: "access-service",
		TS:      time.Now().UnixMilli(),
	})
}
