package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/internal/service"
	"github.com/paygate/access-service/mocks"
)

func testCfg() *config.Config {
	return &config.Config{
		Env:     "local",
		Webhook: config.WebhookConfig{Secret: "hook-secret"},
		Admin:   config.AdminConfig{Token: "admin-token"},
		App: config.AppConfig{
			PublicBaseURL: "https://app.example.com",
			APIBaseURL:    "https://api.example.com",
		},
		Tokens: config.TokensConfig{
			AccessTTL:  24 * time.Hour,
			RecoverTTL: 15 * time.Minute,
		},
		Session: config.SessionConfig{
			TTL:        720 * time.Hour,
			CookieName: "pg_session",
		},
		S3: config.S3Config{
			MaterialKey: "material.pdf",
			PresignTTL:  5 * time.Minute,
		},
	}
}

type deps struct {
	h      *Handlers
	st     *mocks.MockStorage
	ml     *mocks.MockMailer
	signer *mocks.MockSigner
}

func newHandlers(t *testing.T) (*deps, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	ml := mocks.NewMockMailer(ctrl)
	signer := mocks.NewMockSigner(ctrl)
	cfg := testCfg()

	svc := service.New(st, ml, signer, cfg)
	return &deps{h: New(svc, cfg), st: st, ml: ml, signer: signer}, ctrl
}

// withParam имитирует chi URL-параметр для прямого вызова хендлера.
func withParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func jsonReq(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// sessionCookie достаёт сессионную cookie из записанного ответа.
func sessionCookie(rr *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rr.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
