// mailer — отправка писем восстановления доступа через Resend API.
// Отправка по HTTP API, а не SMTP: исходящие SMTP-порты у типовых
// PaaS-хостингов закрыты.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/pkg/redact"
)

// Mailer — контракт отправки письма восстановления.
// Для сервиса отправка best-effort: вызывающий код логирует ошибку,
// но не меняет свой ответ клиенту.
type Mailer interface {
	SendRecoverLink(ctx context.Context, to, link string) error
}

// New возвращает Resend-реализацию, либо dev-заглушку, если API-ключ
// не сконфигурирован (ссылка уходит в лог вместо письма).
func New(cfg config.MailConfig, log *slog.Logger) Mailer {
	if cfg.ResendAPIKey == "" {
		return &devMailer{log: log}
	}

	return &resendMailer{
		client: resend.NewClient(cfg.ResendAPIKey),
		cfg:    cfg,
	}
}

type resendMailer struct {
	client *resend.Client
	cfg    config.MailConfig
}

const recoverSubject = "Your access link"

func recoverText(link string) string {
	return "Here is your access link (valid for a few minutes):\n" + link +
		"\n\nIf you did not request this, ignore this email."
}

func recoverHTML(link string) string {
	return strings.TrimSpace(`
<div style="font-family:Arial,sans-serif;line-height:1.4">
  <h2>Access link</h2>
  <p>Use the button below to sign in. The link expires in a few minutes.</p>
  <p>
    <a href="` + link + `" style="display:inline-block;background:#111;color:#fff;padding:12px 16px;border-radius:10px;text-decoration:none">
      Open content
    </a>
  </p>
  <p style="color:#666;font-size:12px">If you did not request this, ignore this email.</p>
</div>`)
}

func (m *resendMailer) SendRecoverLink(ctx context.Context, to, link string) error {
	const op = "mailer.SendRecoverLink"

	params := &resend.SendEmailRequest{
		From:    m.cfg.From,
		To:      []string{strings.ToLower(strings.TrimSpace(to))},
		Subject: recoverSubject,
		Text:    recoverText(link),
		Html:    recoverHTML(link),
	}
	if m.cfg.ReplyTo != "" {
		params.ReplyTo = m.cfg.ReplyTo
	}

	if _, err := m.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// devMailer пишет ссылку в лог. Только для стендов без RESEND_API_KEY.
type devMailer struct {
	log *slog.Logger
}

func (m *devMailer) SendRecoverLink(_ context.Context, to, link string) error {
	m.log.Info("recover_email_dev_mode",
		slog.String("to", redact.Email(to)),
		slog.String("link", link),
	)
	return nil
}
