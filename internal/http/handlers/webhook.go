package handlers

import (
	"net/http"

	"github.com/paygate/access-service/internal/http/httperr"
)

// webhookResponse — подтверждение доставки провайдеру.
// ok=true даже для проигнорированных событий: провайдер не должен ретраить.
type webhookResponse struct {
	OK        bool   `json:"ok"`
	Ignored   bool   `json:"ignored,omitempty"`
	Event     string `json:"event,omitempty"`
	Warning   string `json:"warning,omitempty"`
	AccessURL string `json:"accessUrl,omitempty"`
}

// Webhook — POST /webhook/purchase.
// Секрет провайдера приходит в заголовке X-Webhook-Token.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{}
	if err := decodeStrict(r, &payload); err != nil {
		httperr.WriteError(w, r, httperr.ErrBadRequest)
		return
	}

	secret := r.Header.Get("X-Webhook-Token")

	res, err := h.Service.ProcessPurchaseWebhook(r.Context(), secret, payload)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, webhookResponse{
		OK:        true,
		Ignored:   res.Ignored,
		Event:     res.Event,
		Warning:   res.Warning,
		AccessURL: res.AccessURL,
	})
}
