package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/paygate/access-service/internal/http/middleware"
	"github.com/paygate/access-service/internal/models"
)

// guardedReq кладёт сессию в контекст так, как это делает сессионная охрана.
func guardedReq(t *testing.T, req *http.Request, sess *models.Session) *http.Request {
	t.Helper()

	resolver := stubSession{sess: sess}
	var out *http.Request
	capture := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) { out = r })

	guard := middleware.SessionGuard(resolver, "pg_session")(capture)
	req.AddCookie(&http.Cookie{Name: "pg_session", Value: "sess-1"})
	guard.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, out)
	return out
}

type stubSession struct {
	sess *models.Session
}

func (s stubSession) SessionByID(_ context.Context, _ string) (*models.Session, error) {
	return s.sess, nil
}

func TestContent_EchoesSessionEmail(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	req := guardedReq(t, httptest.NewRequest(http.MethodGet, "/content", nil),
		&models.Session{Email: "buyer@example.com"})

	rr := httptest.NewRecorder()
	d.h.Content(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		OK       bool   `json:"ok"`
		Email    string `json:"email"`
		Material string `json:"material"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Equal(t, "buyer@example.com", resp.Email)
	require.Equal(t, "material.pdf", resp.Material)
}

func TestContent_NoSessionInContext_401(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	d.h.Content(rr, httptest.NewRequest(http.MethodGet, "/content", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMaterial_ReturnsSignedURL(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.signer.EXPECT().SignedURL(gomock.Any(), "material.pdf", 5*time.Minute).
		Return("https://bucket.example.com/signed", nil)

	req := withParam(httptest.NewRequest(http.MethodGet, "/content/material/material.pdf", nil),
		"key", "material.pdf")
	req = guardedReq(t, req, &models.Session{Email: "buyer@example.com"})

	rr := httptest.NewRecorder()
	d.h.Material(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "https://bucket.example.com/signed")
}

func TestLogout_DeletesSessionAndClearsCookie(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.st.EXPECT().DeleteSession(gomock.Any(), "sess-1").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "pg_session", Value: "sess-1"})

	rr := httptest.NewRecorder()
	d.h.Logout(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(rr, "pg_session")
	require.NotNil(t, cookie)
	require.Empty(t, cookie.Value)
	require.Negative(t, cookie.MaxAge)
}

func TestLogout_NoCookie_StillOK(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	rr := httptest.NewRecorder()
	d.h.Logout(rr, httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusOK, rr.Code)
}
