package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

// Хэш sess:<id> с полями: tok, email, crt (unix), exp (unix). TTL обязателен.
// Поле exp дублирует TTL ключа: срок проверяется и на чтении, чтобы
// рассинхронизация часов или хранилище без вытеснения не продлили сессию.

// SaveSession сохраняет сессию с TTL.
func (s *Storage) SaveSession(ctx context.Context, id string, sess *models.Session, ttl time.Duration) error {
	const op = "storage.redis.SaveSession"

	if ttl <= 0 {
		ttl = storage.DefaultSessionTTL
	}

	kv := map[string]string{
		"tok":   sess.Token,
		"email": sess.Email,
		"crt":   strconv.FormatInt(sess.CreatedAt.Unix(), 10),
		"exp":   strconv.FormatInt(sess.ExpiresAt.Unix(), 10),
	}

	key := s.sessKey(id)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, kv)
	pipe.Expire(ctx, key, ttlSeconds(ttl))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// SessionByID возвращает живую сессию; просроченную удаляет на месте.
func (s *Storage) SessionByID(ctx context.Context, id string) (*models.Session, error) {
	const op = "storage.redis.SessionByID"

	m, err := s.rdb.HGetAll(ctx, s.sessKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	crt, err := strconv.ParseInt(m["crt"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exp, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	expiresAt := time.Unix(exp, 0).UTC()
	if time.Now().UTC().After(expiresAt) {
		// Ленивая очистка: ошибка удаления не важнее факта «сессии нет».
		_ = s.rdb.Del(ctx, s.sessKey(id)).Err()
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return &models.Session{
		Token:     m["tok"],
		Email:     m["email"],
		CreatedAt: time.Unix(crt, 0).UTC(),
		ExpiresAt: expiresAt,
	}, nil
}

// DeleteSession удаляет сессию; идемпотентна.
func (s *Storage) DeleteSession(ctx context.Context, id string) error {
	const op = "storage.redis.DeleteSession"

	if err := s.rdb.Del(ctx, s.sessKey(id)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
