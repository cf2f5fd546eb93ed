// service содержит бизнес-логику сервиса доступа к платному контенту:
// приём вебхука покупки, обмен access-токена на сессию, восстановление
// доступа по email и проверку сессий. Вся долговременная память — внешнее
// key-value хранилище за интерфейсами пакета storage.
//
// Основные аспекты:
//   - Экземпляр Service не хранит состояние запроса и безопасен для
//     конкурентного использования, если переданное хранилище потокобезопасно.
//   - Email нормализуется (trim + lower) на каждой точке входа до любого
//     обращения к хранилищу или сравнения.
//   - Ошибки возвращаются обёрнутыми и маппятся HTTP-слоем на статусы
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/paygate/access-service/internal/config"
	"github.com/paygate/access-service/internal/content"
	"github.com/paygate/access-service/internal/mailer"
	"github.com/paygate/access-service/internal/storage"
)

var (
	// ErrUnauthorized — неверный/отсутствующий секрет вебхука либо
	// отсутствующая/истёкшая сессия. HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTokenNotFound — токен отсутствует в хранилище. «Истёк», «использован»
	// (для recover-токенов) и «не существовал» снаружи неразличимы. HTTP 404.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenConsumed — access-токен уже был обменян. Различается только для
	// access-токенов: их читают неразрушающе перед погашением. HTTP 410.
	ErrTokenConsumed = errors.New("token already consumed")

	// ErrEmailMismatch — email подтверждения не совпадает с email покупки.
	// HTTP 401; текст наружу не уточняет, какой email ожидался.
	ErrEmailMismatch = errors.New("email does not match purchase")

	// ErrEntitlementRevoked — право доступа отозвано между выпуском
	// recover-токена и его погашением. HTTP 403.
	ErrEntitlementRevoked = errors.New("entitlement revoked")

	// ErrMalformedEmail — на входе не похожее на email значение там, где
	// общий ответ не требуется (админ-операции). HTTP 400.
	ErrMalformedEmail = errors.New("malformed email")

	// ErrContentUnavailable — хранилище контента не сконфигурировано.
	// HTTP 503.
	ErrContentUnavailable = errors.New("content storage unavailable")
)

// Service описывает бизнес-логику сервиса доступа.
type Service struct {
	storage storage.Storage
	mailer  mailer.Mailer
	content content.Signer
	cfg     *config.Config
}

// New создаёт новый экземпляр Service.
// signer может быть nil: выдача подписанных ссылок тогда отключена.
func New(st storage.Storage, m mailer.Mailer, signer content.Signer, cfg *config.Config) *Service {
	return &Service{
		storage: st,
		mailer:  m,
		content: signer,
		cfg:     cfg,
	}
}

// normalizeEmail — единственная каноническая форма email в сервисе.
func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// looksLikeEmail — минимальная проверка формы. Намеренно не строже:
// странные, но присутствующие адреса должны идти по общему пути
// (анти-перечисление), а не отбрасываться валидатором.
func looksLikeEmail(email string) bool {
	return strings.Contains(email, "@")
}

// sessionTTL возвращает действующий TTL сессий.
func (s *Service) sessionTTL() time.Duration {
	if s.cfg.Session.TTL > 0 {
		return s.cfg.Session.TTL
	}

	return storage.DefaultSessionTTL
}
