package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
	"github.com/paygate/access-service/pkg/log"
	"github.com/paygate/access-service/pkg/redact"
)

// RequestRecovery запускает восстановление доступа по email.
//
// Метод намеренно ничего не возвращает: наружу всегда уходит один и тот же
// общий ответ («если адрес есть — письмо придёт»), независимо от того,
// зарегистрирован email, не похож на email или право отозвано. Сбои
// хранилища и почты логируются и тоже не меняют ответ (анти-перечисление).
func (s *Service) RequestRecovery(ctx context.Context, rawEmail string) {
	const op = "service.recovery.RequestRecovery"

	lg := log.From(ctx)

	email := normalizeEmail(rawEmail)
	if !looksLikeEmail(email) {
		// Заведомо не email: выходим до любого обращения к хранилищу.
		return
	}

	active, err := s.storage.IsEntitled(ctx, email)
	if err != nil {
		lg.Error("recover_entitlement_check_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		return
	}

	if !active {
		lg.Info("recover_requested_for_inactive",
			slog.String("email", redact.Email(email)),
		)
		return
	}

	token := uuid.NewString()
	rt := &models.RecoverToken{Email: email, CreatedAt: time.Now().UTC()}
	if err := s.storage.SaveRecoverToken(ctx, token, rt, s.cfg.Tokens.RecoverTTL); err != nil {
		lg.Error("recover_token_save_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		return
	}

	link := s.recoverURL(token)
	if err := s.mailer.SendRecoverLink(ctx, email, link); err != nil {
		// Сбой доставки не меняет ответ: клиент уже получил общий текст.
		lg.Error("recover_email_send_failed",
			slog.String("op", op),
			slog.String("email", redact.Email(email)),
			slog.String("err", err.Error()),
		)
		return
	}

	lg.Info("recover_email_sent", slog.String("email", redact.Email(email)))
}

// RedeemRecoverToken гасит recover-токен и выпускает сессию.
//
// Погашение разрушающее: повторный вызов по тому же токену — ErrTokenNotFound.
// Право доступа перепроверяется на момент погашения: покупка могла быть
// отозвана между выпуском токена и переходом по ссылке.
func (s *Service) RedeemRecoverToken(ctx context.Context, token string) (*IssuedSession, error) {
	const op = "service.recovery.RedeemRecoverToken"

	rt, err := s.storage.ConsumeRecoverToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	active, err := s.storage.IsEntitled(ctx, rt.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !active {
		return nil, fmt.Errorf("%s: %w", op, ErrEntitlementRevoked)
	}

	return s.issueSession(ctx, models.RecoverOrigin, rt.Email)
}

// recoverURL собирает ссылку погашения recover-токена.
func (s *Service) recoverURL(token string) string {
	return strings.TrimRight(s.cfg.App.APIBaseURL, "/") + "/access/recover/" + token
}
