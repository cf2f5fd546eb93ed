package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/mocks"
)

func purchasePayload(email string) map[string]any {
	return map[string]any{
		"event": "purchase_approved",
		"customer": map[string]any{
			"email": email,
		},
	}
}

func TestProcessPurchaseWebhook_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	var savedToken string

	st.EXPECT().
		SaveEntitlement(gomock.Any(), "buyer@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ent *models.Entitlement) error {
			require.True(t, ent.Active)
			require.Equal(t, models.SourceWebhook, ent.Source)
			require.Equal(t, PurchaseEvent, ent.Event)
			return nil
		})

	st.EXPECT().
		SaveAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), 24*time.Hour).
		DoAndReturn(func(_ context.Context, token string, at *models.AccessToken, _ time.Duration) error {
			savedToken = token
			require.Equal(t, "buyer@example.com", at.Email)
			require.False(t, at.Consumed)
			return nil
		})

	// Email в полезной нагрузке нормализуется до использования.
	res, err := svc.ProcessPurchaseWebhook(ctx, "hook-secret", purchasePayload(" Buyer@Example.Com "))
	require.NoError(t, err)
	require.False(t, res.Ignored)
	require.Empty(t, res.Warning)
	require.Equal(t, "buyer@example.com", res.Email)
	require.NotEmpty(t, savedToken)
	require.Equal(t, "https://api.example.com/access/"+savedToken, res.AccessURL)
}

func TestProcessPurchaseWebhook_WrongSecret_NoSideEffects(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.ProcessPurchaseWebhook(context.Background(), "wrong", purchasePayload("buyer@example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProcessPurchaseWebhook_UnconfiguredSecret_FailsClosed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testCfg()
	cfg.Webhook.Secret = ""
	svc := New(mocks.NewMockStorage(ctrl), mocks.NewMockMailer(ctrl), nil, cfg)

	// Даже «совпадающий» пустой секрет отклоняется.
	_, err := svc.ProcessPurchaseWebhook(context.Background(), "", purchasePayload("buyer@example.com"))
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProcessPurchaseWebhook_NonPurchaseEvent_Ignored(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	res, err := svc.ProcessPurchaseWebhook(context.Background(), "hook-secret", map[string]any{
		"event": "refund_issued",
	})
	require.NoError(t, err)
	require.True(t, res.Ignored)
	require.Equal(t, "refund_issued", res.Event)
}

func TestProcessPurchaseWebhook_EventFromTypeField(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveEntitlement(gomock.Any(), "buyer@example.com", gomock.Any()).Return(nil)
	st.EXPECT().SaveAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.ProcessPurchaseWebhook(context.Background(), "hook-secret", map[string]any{
		"type":  "Purchase_Approved",
		"email": "buyer@example.com",
	})
	require.NoError(t, err)
	require.False(t, res.Ignored)
}

func TestProcessPurchaseWebhook_MissingEmail_WarnsWithoutSideEffects(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	res, err := svc.ProcessPurchaseWebhook(context.Background(), "hook-secret", map[string]any{
		"event": "purchase_approved",
		"customer": map[string]any{
			"email": "not-an-email",
		},
	})
	require.NoError(t, err)
	require.False(t, res.Ignored)
	require.Equal(t, "missing_email", res.Warning)
	require.Empty(t, res.AccessURL)
}

func TestProcessPurchaseWebhook_StorageError_Propagated(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().SaveEntitlement(gomock.Any(), "buyer@example.com", gomock.Any()).
		Return(errors.New("store down"))

	_, err := svc.ProcessPurchaseWebhook(context.Background(), "hook-secret", purchasePayload("buyer@example.com"))
	require.Error(t, err)
}

func TestGrantAccess_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	var savedToken string

	st.EXPECT().
		SaveEntitlement(gomock.Any(), "buyer@example.com", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, ent *models.Entitlement) error {
			require.True(t, ent.Active)
			require.Equal(t, models.SourceAdminSeed, ent.Source)
			return nil
		})
	st.EXPECT().
		SaveAccessToken(gomock.Any(), gomock.Any(), gomock.Any(), 24*time.Hour).
		DoAndReturn(func(_ context.Context, token string, _ *models.AccessToken, _ time.Duration) error {
			savedToken = token
			return nil
		})

	url, err := svc.GrantAccess(context.Background(), "Buyer@Example.Com")
	require.NoError(t, err)
	require.Equal(t, "https://api.example.com/access/"+savedToken, url)
}

func TestGrantAccess_MalformedEmail(t *testing.T) {
	t.Parallel()

	svc, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.GrantAccess(context.Background(), "no-at-sign")
	require.ErrorIs(t, err, ErrMalformedEmail)
}

func TestExtractEmail_CandidatePaths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		payload map[string]any
		want    string
	}{
		{"customer", map[string]any{"customer": map[string]any{"email": "a@b.c"}}, "a@b.c"},
		{"buyer", map[string]any{"buyer": map[string]any{"email": "a@b.c"}}, "a@b.c"},
		{"data_customer", map[string]any{"data": map[string]any{"customer": map[string]any{"email": "a@b.c"}}}, "a@b.c"},
		{"data_buyer", map[string]any{"data": map[string]any{"buyer": map[string]any{"email": "a@b.c"}}}, "a@b.c"},
		{"data_email", map[string]any{"data": map[string]any{"email": "a@b.c"}}, "a@b.c"},
		{"top_level", map[string]any{"email": "a@b.c"}, "a@b.c"},
		{"no_at_sign_rejected", map[string]any{"email": "nope"}, ""},
		{"non_string_rejected", map[string]any{"email": 42}, ""},
		{"empty", map[string]any{}, ""},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, extractEmail(tc.payload))
		})
	}
}

func TestExtractEventName_CandidateFields(t *testing.T) {
	t.Parallel()

	require.Equal(t, "purchase_approved", extractEventName(map[string]any{"event": "purchase_approved"}))
	require.Equal(t, "x", extractEventName(map[string]any{"type": "x"}))
	require.Equal(t, "y", extractEventName(map[string]any{"action": "y"}))
	require.Equal(t, "", extractEventName(map[string]any{"other": "z"}))
}
