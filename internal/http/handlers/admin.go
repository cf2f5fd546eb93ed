package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paygate/access-service/internal/http/httperr"
)

type seedEntitlementRequest struct {
	Email string `json:"email"`
}

type adminResponse struct {
	OK    bool   `json:"ok"`
	Email string `json:"email"`
}

// SeedEntitlement — POST /admin/entitlements (под админской охраной):
// включает право доступа для email в обход вебхука.
func (h *Handlers) SeedEntitlement(w http.ResponseWriter, r *http.Request) {
	var in seedEntitlementRequest
	if err := decodeStrict(r, &in); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	if err := h.Service.SeedEntitlement(r.Context(), in.Email); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminResponse{OK: true, Email: in.Email})
}

// RevokeEntitlement — DELETE /admin/entitlements/{email} (под админской
// охраной): отзывает право доступа. Историю не трогает.
func (h *Handlers) RevokeEntitlement(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.Service.RevokeEntitlement(r.Context(), email); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, adminResponse{OK: true, Email: email})
}
