package redis

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paygate/access-service/internal/models"
)

// Хэш ent:<email> с полями: act (0/1), upd (unix), src, evt. Без TTL.

// SaveEntitlement идемпотентно перезаписывает запись права доступа.
func (s *Storage) SaveEntitlement(ctx context.Context, email string, ent *models.Entitlement) error {
	const op = "storage.redis.SaveEntitlement"

	kv := map[string]string{
		"act": boolTo01(ent.Active),
		"upd": strconv.FormatInt(ent.UpdatedAt.Unix(), 10),
		"src": ent.Source,
		"evt": ent.Event,
	}

	if err := s.rdb.HSet(ctx, s.entKey(email), kv).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsEntitled возвращает act==1; отсутствие записи — false без ошибки.
func (s *Storage) IsEntitled(ctx context.Context, email string) (bool, error) {
	const op = "storage.redis.IsEntitled"

	act, err := s.rdb.HGet(ctx, s.entKey(email), "act").Result()
	if err == goredis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return act == "1", nil
}
