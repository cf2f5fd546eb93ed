package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

// IssuedSession — свежевыпущенная сессия вместе с её идентификатором.
// ID уходит клиенту только в httpOnly-cookie.
type IssuedSession struct {
	ID      string
	Session *models.Session
}

// issueSession выпускает новую сессию для email.
// token — access-токен, породивший сессию, либо models.RecoverOrigin.
func (s *Service) issueSession(ctx context.Context, token, email string) (*IssuedSession, error) {
	const op = "service.session.issueSession"

	now := time.Now().UTC()
	ttl := s.sessionTTL()

	id := uuid.NewString()
	sess := &models.Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := s.storage.SaveSession(ctx, id, sess, ttl); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &IssuedSession{ID: id, Session: sess}, nil
}

// SessionByID возвращает живую сессию по идентификатору из cookie.
// Отсутствие, истечение и (при включённой перепроверке) отозванное право —
// один и тот же исход ErrUnauthorized: охраняемые эндпойнты не различают причин.
func (s *Service) SessionByID(ctx context.Context, id string) (*models.Session, error) {
	const op = "service.session.SessionByID"

	sess, err := s.storage.SessionByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.cfg.Session.RevalidateEntitlement {
		active, err := s.storage.IsEntitled(ctx, sess.Email)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if !active {
			return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
		}
	}

	return sess, nil
}

// Logout удаляет сессию; повторный вызов безвреден.
func (s *Service) Logout(ctx context.Context, id string) error {
	const op = "service.session.Logout"

	if id == "" {
		return nil
	}

	if err := s.storage.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SeedEntitlement — административная установка права доступа (active=true).
func (s *Service) SeedEntitlement(ctx context.Context, rawEmail string) error {
	const op = "service.session.SeedEntitlement"

	email := normalizeEmail(rawEmail)
	if !looksLikeEmail(email) {
		return fmt.Errorf("%s: %w", op, ErrMalformedEmail)
	}

	ent := &models.Entitlement{
		Active:    true,
		UpdatedAt: time.Now().UTC(),
		Source:    models.SourceAdminSeed,
	}

	if err := s.storage.SaveEntitlement(ctx, email, ent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RevokeEntitlement — административный отзыв права доступа (active=false).
// Историю не удаляет. Уже выданные сессии живут до своего истечения, если
// не включён Session.RevalidateEntitlement.
func (s *Service) RevokeEntitlement(ctx context.Context, rawEmail string) error {
	const op = "service.session.RevokeEntitlement"

	email := normalizeEmail(rawEmail)
	if !looksLikeEmail(email) {
		return fmt.Errorf("%s: %w", op, ErrMalformedEmail)
	}

	ent := &models.Entitlement{
		Active:    false,
		UpdatedAt: time.Now().UTC(),
		Source:    models.SourceAdminSeed,
	}

	if err := s.storage.SaveEntitlement(ctx, email, ent); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
