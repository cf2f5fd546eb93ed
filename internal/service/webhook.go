package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/pkg/log"
	"github.com/paygate/access-service/pkg/redact"
)

// PurchaseEvent — единственное событие провайдера, несущее побочные эффекты.
const PurchaseEvent = "purchase_approved"

// WebhookResult — результат обработки вебхука для HTTP-слоя.
// Ignored и Warning — подтверждённые, но бездейственные исходы: провайдер
// не должен ретраить такие доставки бесконечно.
type WebhookResult struct {
	Ignored   bool
	Event     string
	Warning   string
	Email     string
	AccessURL string
}

// ProcessPurchaseWebhook обрабатывает доставку вебхука платёжного провайдера.
//
// Секрет сравнивается с конфигурацией побайтно; несконфигурированный секрет
// закрывает вебхук целиком (fail closed). Событие покупки: включает право
// доступа, выпускает свежий access-токен и возвращает собранную ссылку
// доступа. Повторная доставка той же покупки безопасна: выпускается ещё один
// валидный токен, право переустанавливается идемпотентно.
func (s *Service) ProcessPurchaseWebhook(ctx context.Context, secret string, payload map[string]any) (*WebhookResult, error) {
	const op = "service.webhook.ProcessPurchaseWebhook"

	lg := log.From(ctx)

	if s.cfg.Webhook.Secret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(s.cfg.Webhook.Secret)) != 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	event := extractEventName(payload)
	if !strings.EqualFold(event, PurchaseEvent) {
		return &WebhookResult{Ignored: true, Event: event}, nil
	}

	email := normalizeEmail(extractEmail(payload))
	if email == "" {
		// Покупка без извлекаемого email: подтверждаем доставку и оставляем
		// след для ручной сверки.
		lg.Warn("purchase_without_email", slog.String("op", op), slog.String("event", event))
		return &WebhookResult{Event: event, Warning: "missing_email"}, nil
	}

	now := time.Now().UTC()

	ent := &models.Entitlement{
		Active:    true,
		UpdatedAt: now,
		Source:    models.SourceWebhook,
		Event:     PurchaseEvent,
	}
	if err := s.storage.SaveEntitlement(ctx, email, ent); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	token := uuid.NewString()
	at := &models.AccessToken{Email: email, CreatedAt: now}
	if err := s.storage.SaveAccessToken(ctx, token, at, s.cfg.Tokens.AccessTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("purchase_approved",
		slog.String("email", redact.Email(email)),
		slog.String("token", redact.Token()),
	)

	return &WebhookResult{
		Event:     event,
		Email:     email,
		AccessURL: s.accessURL(token),
	}, nil
}

// GrantAccess — административная выдача доступа в обход вебхука
// (сверка покупок, сделанных до подключения провайдера).
// Включает право доступа и выпускает access-токен с обычным TTL.
func (s *Service) GrantAccess(ctx context.Context, rawEmail string) (string, error) {
	const op = "service.webhook.GrantAccess"

	email := normalizeEmail(rawEmail)
	if !looksLikeEmail(email) {
		return "", fmt.Errorf("%s: %w", op, ErrMalformedEmail)
	}

	now := time.Now().UTC()

	ent := &models.Entitlement{
		Active:    true,
		UpdatedAt: now,
		Source:    models.SourceAdminSeed,
	}
	if err := s.storage.SaveEntitlement(ctx, email, ent); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	token := uuid.NewString()
	at := &models.AccessToken{Email: email, CreatedAt: now}
	if err := s.storage.SaveAccessToken(ctx, token, at, s.cfg.Tokens.AccessTTL); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.accessURL(token), nil
}

// accessURL собирает публичную ссылку обмена access-токена.
func (s *Service) accessURL(token string) string {
	return strings.TrimRight(s.cfg.App.APIBaseURL, "/") + "/access/" + token
}

// extractEventName достаёт имя события из типовых полей полезной нагрузки.
func extractEventName(payload map[string]any) string {
	for _, k := range []string{"event", "type", "action"} {
		if v, ok := payload[k].(string); ok && v != "" {
			return v
		}
	}

	return ""
}

// extractEmail ищет email покупателя по известным путям полезной нагрузки:
// формат у провайдеров плавает от доставки к доставке.
func extractEmail(payload map[string]any) string {
	candidates := []string{
		dig(payload, "customer", "email"),
		dig(payload, "buyer", "email"),
		dig(payload, "data", "customer", "email"),
		dig(payload, "data", "buyer", "email"),
		dig(payload, "data", "email"),
		dig(payload, "email"),
	}

	for _, c := range candidates {
		if strings.Contains(c, "@") {
			return c
		}
	}

	return ""
}

func dig(m map[string]any, path ...string) string {
	cur := any(m)
	for _, k := range path {
		mm, ok := cur.(map[string]any)
		if !ok {
			return ""
		}
		cur = mm[k]
	}

	s, _ := cur.(string)
	return s
}
