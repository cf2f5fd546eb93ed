package service

import (
	"context"
	"fmt"
)

// ContentURL возвращает короткоживущую подписанную ссылку на материал.
// Пустой key означает основной материал из конфигурации. Вызов доступен
// только из-под сессионной охраны, но сам от сессии не зависит.
func (s *Service) ContentURL(ctx context.Context, key string) (string, error) {
	const op = "service.content.ContentURL"

	if s.content == nil {
		return "", fmt.Errorf("%s: %w", op, ErrContentUnavailable)
	}

	if key == "" {
		key = s.cfg.S3.MaterialKey
	}

	url, err := s.content.SignedURL(ctx, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return url, nil
}
