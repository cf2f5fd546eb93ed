// content предоставляет выдачу подписанных ссылок на защищённый материал
// из S3-совместимого бакета (R2/MinIO). Ссылки короткоживущие; доступ к
// эндпойнту охраняется сессионной мидлварой, сама выдача от сессий не зависит.
package content

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/paygate/access-service/internal/config"
)

// Signer — контракт выдачи подписанной ссылки на объект.
type Signer interface {
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}

// Storage — адаптер S3-совместимого хранилища на minio-go.
type Storage struct {
	cfg    config.S3Config
	client *mclient.Client
}

// New создает и инициализирует клиент. Перенастраивает endpoint (убирает
// схему), подбирает Secure по схеме и выполняет fail-fast-проверку бакета.
func New(ctx context.Context, cfg config.S3Config) (*Storage, error) {
	const op = "content.New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &Storage{cfg: cfg, client: client}, nil
}

// SignedURL возвращает presigned GET на объект бакета.
// Неположительный ttl заменяется значением из конфига.
func (s *Storage) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	const op = "content.SignedURL"

	if ttl <= 0 {
		ttl = s.cfg.PresignTTL
	}

	u, err := s.client.PresignedGetObject(ctx, s.cfg.Bucket, key, ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// Проверка выполнения контракта.
var _ Signer = (*Storage)(nil)
