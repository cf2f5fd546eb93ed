package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
	"github.com/paygate/access-service/pkg/log"
	"github.com/paygate/access-service/pkg/redact"
)

// ClientInfo — лёгкий отпечаток клиента при обмене токена (sha256-хэши,
// сырые значения сюда не попадают). Пишется на запись токена best-effort.
type ClientInfo struct {
	IPHash string
	UAHash string
}

// AccessTokenByID — неразрушающая проверка access-токена (экран подтверждения
// email). Отсутствующий и истёкший токены неразличимы; погашенный различим —
// сам токен и есть секрет, уточнение состояния ничего не раскрывает.
func (s *Service) AccessTokenByID(ctx context.Context, token string) (*models.AccessToken, error) {
	const op = "service.access.AccessTokenByID"

	at, err := s.storage.AccessTokenByID(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if at.Consumed {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenConsumed)
	}

	return at, nil
}

// ExchangeAccessToken обменивает access-токен на сессию.
//
// Email подтверждения должен совпасть с email покупки (после нормализации).
// Погашение атомарно: из двух конкурентных обменов сессию получает ровно
// один, второй увидит ErrTokenConsumed.
func (s *Service) ExchangeAccessToken(ctx context.Context, token, rawEmail string, client ClientInfo) (*IssuedSession, error) {
	const op = "service.access.ExchangeAccessToken"

	lg := log.From(ctx)

	at, err := s.AccessTokenByID(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	email := normalizeEmail(rawEmail)
	if email == "" || email != at.Email {
		return nil, fmt.Errorf("%s: %w", op, ErrEmailMismatch)
	}

	ok, err := s.storage.ConsumeAccessToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !ok {
		// Проигранная гонка либо истечение между чтением и погашением.
		return nil, fmt.Errorf("%s: %w", op, ErrTokenConsumed)
	}

	if client.IPHash != "" || client.UAHash != "" {
		if err := s.storage.SetAccessTokenClient(ctx, token, client.IPHash, client.UAHash); err != nil {
			lg.Warn("access_token_client_mark_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	lg.Info("access_token_exchanged", slog.String("email", redact.Email(email)))

	return s.issueSession(ctx, token, email)
}
