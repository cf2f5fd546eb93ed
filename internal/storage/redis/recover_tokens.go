package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

// Строка recover:<token> со значением JSON. Строка, а не хэш, — ради GETDEL:
// чтение и удаление должны быть одной командой, второго успешного чтения
// у recover-токена не бывает.

// SaveRecoverToken сохраняет токен с TTL.
func (s *Storage) SaveRecoverToken(ctx context.Context, token string, rt *models.RecoverToken, ttl time.Duration) error {
	const op = "storage.redis.SaveRecoverToken"

	if ttl <= 0 {
		ttl = storage.DefaultRecoverTokenTTL
	}

	raw, err := json.Marshal(rt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.rdb.Set(ctx, s.recoverKey(token), raw, ttlSeconds(ttl)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRecoverToken — атомарное чтение-с-удалением.
func (s *Storage) ConsumeRecoverToken(ctx context.Context, token string) (*models.RecoverToken, error) {
	const op = "storage.redis.ConsumeRecoverToken"

	raw, err := s.rdb.GetDel(ctx, s.recoverKey(token)).Result()
	if err == goredis.Nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var rt models.RecoverToken
	if err := json.Unmarshal([]byte(raw), &rt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &rt, nil
}
