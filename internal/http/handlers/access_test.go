package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

func TestAccessState_OK(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "tok-1").
		Return(&models.AccessToken{Email: "buyer@example.com"}, nil)

	req := withParam(httptest.NewRequest(http.MethodGet, "/access/tok-1", nil), "token", "tok-1")
	rr := httptest.NewRecorder()
	d.h.AccessState(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Valid bool   `json:"valid"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.Valid)
	require.Equal(t, "buyer@example.com", resp.Email)
}

func TestAccessState_Unknown_404(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "gone").Return(nil, storage.ErrNotFound)

	req := withParam(httptest.NewRequest(http.MethodGet, "/access/gone", nil), "token", "gone")
	rr := httptest.NewRecorder()
	d.h.AccessState(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAccessState_Consumed_410(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "used").
		Return(&models.AccessToken{Email: "buyer@example.com", Consumed: true}, nil)

	req := withParam(httptest.NewRequest(http.MethodGet, "/access/used", nil), "token", "used")
	rr := httptest.NewRecorder()
	d.h.AccessState(rr, req)

	require.Equal(t, http.StatusGone, rr.Code)
}

func TestExchange_OK_SetsSessionCookie(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	var sessID string

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "tok-1").
		Return(&models.AccessToken{Email: "buyer@example.com"}, nil)
	d.st.EXPECT().ConsumeAccessToken(gomock.Any(), "tok-1").Return(true, nil)
	d.st.EXPECT().SetAccessTokenClient(gomock.Any(), "tok-1", gomock.Any(), gomock.Any()).Return(nil)
	d.st.EXPECT().
		SaveSession(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, id string, _ *models.Session, _ any) error {
			sessID = id
			return nil
		})

	req := jsonReq(http.MethodPost, "/access/tok-1", `{"email":" Buyer@Example.Com "}`)
	req.Header.Set("User-Agent", "test-agent")
	req = withParam(req, "token", "tok-1")

	rr := httptest.NewRecorder()
	d.h.Exchange(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(rr, "pg_session")
	require.NotNil(t, cookie)
	require.Equal(t, sessID, cookie.Value)
	require.True(t, cookie.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	require.False(t, cookie.Secure) // env=local

	var resp struct {
		OK       bool   `json:"ok"`
		Redirect string `json:"redirect"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.True(t, resp.OK)
	require.Equal(t, "/content", resp.Redirect)
}

func TestExchange_UnsetSessionTTL_CookieUsesStoreDefault(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	// TTL не задан: cookie должна жить столько же, сколько запись в
	// хранилище (30 суток по умолчанию), а не до конца браузерной сессии.
	d.h.Cfg.Session.TTL = 0

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "tok-1").
		Return(&models.AccessToken{Email: "buyer@example.com"}, nil)
	d.st.EXPECT().ConsumeAccessToken(gomock.Any(), "tok-1").Return(true, nil)
	d.st.EXPECT().SetAccessTokenClient(gomock.Any(), "tok-1", gomock.Any(), gomock.Any()).Return(nil)
	d.st.EXPECT().SaveSession(gomock.Any(), gomock.Any(), gomock.Any(), storage.DefaultSessionTTL).Return(nil)

	req := jsonReq(http.MethodPost, "/access/tok-1", `{"email":"buyer@example.com"}`)
	req = withParam(req, "token", "tok-1")

	rr := httptest.NewRecorder()
	d.h.Exchange(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	cookie := sessionCookie(rr, "pg_session")
	require.NotNil(t, cookie)
	require.Equal(t, int(storage.DefaultSessionTTL/time.Second), cookie.MaxAge)
}

func TestExchange_EmailMismatch_401_NoCookie(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	d.st.EXPECT().AccessTokenByID(gomock.Any(), "tok-1").
		Return(&models.AccessToken{Email: "buyer@example.com"}, nil)

	req := jsonReq(http.MethodPost, "/access/tok-1", `{"email":"other@example.com"}`)
	req = withParam(req, "token", "tok-1")

	rr := httptest.NewRecorder()
	d.h.Exchange(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Nil(t, sessionCookie(rr, "pg_session"))
}

func TestExchange_BrokenJSON_400(t *testing.T) {
	d, ctrl := newHandlers(t)
	defer ctrl.Finish()

	req := jsonReq(http.MethodPost, "/access/tok-1", `not-json`)
	req = withParam(req, "token", "tok-1")

	rr := httptest.NewRecorder()
	d.h.Exchange(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}
