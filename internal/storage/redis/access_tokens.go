package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/paygate/access-service/internal/models"
	"github.com/paygate/access-service/internal/storage"
)

// Хэш token:<token> с полями: email, crt (unix), cns (0/1), iph, uah. TTL обязателен.

// consumeScript атомарно гасит токен: проверка существования, проверка флага
// cns и его установка выполняются одной командой на стороне Redis. Остаточный
// TTL ключа командой HSET не затрагивается — погашенный токен продолжает
// истекать по исходному расписанию, а не «продлевается» перезаписью.
var consumeScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
  return 0
end
if redis.call("HGET", KEYS[1], "cns") == "1" then
  return 0
end
redis.call("HSET", KEYS[1], "cns", "1")
return 1
`)

// SaveAccessToken сохраняет токен с TTL.
func (s *Storage) SaveAccessToken(ctx context.Context, token string, at *models.AccessToken, ttl time.Duration) error {
	const op = "storage.redis.SaveAccessToken"

	if ttl <= 0 {
		ttl = storage.DefaultAccessTokenTTL
	}

	kv := map[string]string{
		"email": at.Email,
		"crt":   strconv.FormatInt(at.CreatedAt.Unix(), 10),
		"cns":   boolTo01(at.Consumed),
	}

	key := s.tokenKey(token)

	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, kv)
	pipe.Expire(ctx, key, ttlSeconds(ttl))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AccessTokenByID находит токен без побочных эффектов.
func (s *Storage) AccessTokenByID(ctx context.Context, token string) (*models.AccessToken, error) {
	const op = "storage.redis.AccessTokenByID"

	m, err := s.rdb.HGetAll(ctx, s.tokenKey(token)).Result()
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

	return &models.AccessToken{
		Email:     m["email"],
		CreatedAt: time.Unix(crt, 0).UTC(),
		Consumed:  m["cns"] == "1",
		IPHash:    m["iph"],
		UAHash:    m["uah"],
	}, nil
}

// ConsumeAccessToken атомарно переводит токен в consumed, сохраняя остаточный TTL.
func (s *Storage) ConsumeAccessToken(ctx context.Context, token string) (bool, error) {
	const op = "storage.redis.ConsumeAccessToken"

	n, err := consumeScript.Run(ctx, s.rdb, []string{s.tokenKey(token)}).Int()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n == 1, nil
}

// SetAccessTokenClient best-effort записывает отпечаток клиента на погашенный токен.
// Если токен успел истечь между обменом и этой записью — молча выходим:
// создавать ключ без TTL нельзя.
func (s *Storage) SetAccessTokenClient(ctx context.Context, token, ipHash, uaHash string) error {
	const op = "storage.redis.SetAccessTokenClient"

	key := s.tokenKey(token)

	exists, err := s.rdb.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if exists == 0 {
		return nil
	}

	// HSET по живому ключу не меняет его TTL.
	if err := s.rdb.HSet(ctx, key, "iph", ipHash, "uah", uaHash).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
