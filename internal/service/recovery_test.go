package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

func TestRequestRecovery_MalformedEmail_NoStoreAccess(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Ни одного EXPECT: любое обращение к хранилищу или почте провалит тест.
	svc.RequestRecovery(context.Background(), "no-at-sign")
	svc.RequestRecovery(context.Background(), "   ")
}

func TestRequestRecovery_InactiveEmail_NoTokenCreated(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().IsEntitled(gomock.Any(), "stranger@example.com").Return(false, nil)

	svc.RequestRecovery(context.Background(), "Stranger@Example.Com")
}

func TestRequestRecovery_Active_MintsTokenAndSendsEmail(t *testing.T) {
	t.Parallel()

	svc, st, ml, ctrl := newSvc(t)
	defer ctrl.Finish()

	var savedToken string

	st.EXPECT().IsEntitled(gomock.Any(), "buyer@example.com").Return(true, nil)
	st.EXPECT().
		SaveRecoverToken(gomock.Any(), gomock.Any(), gomock.Any(), 15*time.Minute).
		DoAndReturn(func(_ context.Context, token string, rt *models.RecoverToken, _ time.Duration) error {
			savedToken = token
			require.Equal(t, "buyer@example.com", rt.Email)
			require.WithinDuration(t, time.Now().UTC(), rt.CreatedAt, 2*time.Second)
			return nil
		})
	ml.EXPECT().
		SendRecoverLink(gomock.Any(), "buyer@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, link string) error {
			require.True(t, strings.HasPrefix(link, "https://api.example.com/access/recover/"))
			require.Contains(t, link, savedToken)
			return nil
		})

	svc.RequestRecovery(context.Background(), " Buyer@Example.Com ")
}

func TestRequestRecovery_MailFailure_Swallowed(t *testing.T) {
	t.Parallel()

	svc, st, ml, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().IsEntitled(gomock.Any(), "buyer@example.com").Return(true, nil)
	st.EXPECT().SaveRecoverToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	ml.EXPECT().SendRecoverLink(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("smtp on fire"))

	// Ошибка доставки не должна всплыть.
	svc.RequestRecovery(context.Background(), "buyer@example.com")
}

func TestRequestRecovery_StorageFailure_Swallowed(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().IsEntitled(gomock.Any(), "buyer@example.com").
		Return(false, errors.New("store down"))

	svc.RequestRecovery(context.Background(), "buyer@example.com")
}

func TestRedeemRecoverToken_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	now := time.Now().UTC()

	st.EXPECT().ConsumeRecoverToken(gomock.Any(), "rec-1").
		Return(&models.RecoverToken{Email: "buyer@example.com", CreatedAt: now}, nil)
	st.EXPECT().IsEntitled(gomock.Any(), "buyer@example.com").Return(true, nil)
	st.EXPECT().
		SaveSession(gomock.Any(), gomock.Any(), gomock.Any(), 720*time.Hour).
		DoAndReturn(func(_ context.Context, id string, sess *models.Session, _ time.Duration) error {
			require.NotEmpty(t, id)
			require.Equal(t, models.RecoverOrigin, sess.Token)
			require.Equal(t, "buyer@example.com", sess.Email)
			require.WithinDuration(t, now.Add(720*time.Hour), sess.ExpiresAt, 2*time.Second)
			return nil
		})

	issued, err := svc.RedeemRecoverToken(context.Background(), "rec-1")
	require.NoError(t, err)
	require.NotEmpty(t, issued.ID)
	require.Equal(t, "buyer@example.com", issued.Session.Email)
}

func TestRedeemRecoverToken_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeRecoverToken(gomock.Any(), "gone").
		Return(nil, storage.ErrNotFound)

	_, err := svc.RedeemRecoverToken(context.Background(), "gone")
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestRedeemRecoverToken_RevokedEntitlement_NoSession(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ConsumeRecoverToken(gomock.Any(), "rec-1").
		Return(&models.RecoverToken{Email: "buyer@example.com", CreatedAt: time.Now().UTC()}, nil)
	// Право отозвано между выпуском токена и погашением.
	st.EXPECT().IsEntitled(gomock.Any(), "buyer@example.com").Return(false, nil)

	_, err := svc.RedeemRecoverToken(context.Background(), "rec-1")
	require.ErrorIs(t, err, ErrEntitlementRevoked)
}
