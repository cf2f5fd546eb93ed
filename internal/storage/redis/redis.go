// redis — реализация storage.Storage поверх Redis.
//
// Записи хранятся хэшами (entitlement, access-токен, сессия) либо строкой
// JSON (recover-токен — ради атомарного GETDEL). Все TTL перед записью
// округляются вверх до целых секунд: запрошенное окно жизни ключа не должно
// молча укорачиваться.
package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paygate/access-service/internal/storage"
)

// Storage — адаптер Redis. Экземпляр безопасен для конкурентного
// использования: всё состояние живёт на стороне Redis.
type Storage struct {
	rdb    *goredis.Client
	prefix string
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Prefix добавляется ко всем ключам (удобно делить один Redis между стендами).
func New(ctx context.Context, redisURL, prefix string) (*Storage, error) {
	const op = "storage.redis.New"

	opt, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := goredis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{rdb: rdb, prefix: prefix}, nil
}

func (s *Storage) Close() error { return s.rdb.Close() }

// Неймспейсы ключей.
func (s *Storage) entKey(email string) string     { return s.prefix + "ent:" + email }
func (s *Storage) tokenKey(token string) string   { return s.prefix + "token:" + token }
func (s *Storage) recoverKey(token string) string { return s.prefix + "recover:" + token }
func (s *Storage) sessKey(id string) string       { return s.prefix + "sess:" + id }

// ttlSeconds округляет TTL вверх до целых секунд.
func ttlSeconds(d time.Duration) time.Duration {
	secs := (d + time.Second - 1) / time.Second
	return secs * time.Second
}

func boolTo01(b bool) string {
	if b {
		return "1"
	}

	return "0"
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Storage)(nil)
