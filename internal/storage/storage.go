// storage задаёт контракт внешнего key-value хранилища сервиса.
// Все ключи живут в одном неймспейсе с префиксами по назначению:
// token:<accessToken>, sess:<sessionId>, recover:<recoverToken>, ent:<email>.
// Email во всех методах ожидается уже нормализованным (trim + lower).
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/paygate/access-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена либо уже истекла.
	// Для потребителя эти два случая неразличимы намеренно.
	ErrNotFound = errors.New("not found")
)

// TTL по умолчанию. Save-методы подставляют их вместо неположительного TTL:
// ошибка вызывающего кода не должна ронять поток покупки.
const (
	DefaultAccessTokenTTL  = 24 * time.Hour
	DefaultRecoverTokenTTL = 15 * time.Minute
	DefaultSessionTTL      = 30 * 24 * time.Hour
)

// EntitlementStorage выполняет операции над правами доступа.
type EntitlementStorage interface {
	// SaveEntitlement идемпотентно перезаписывает запись права доступа.
	// Используется и для выдачи (Active=true), и для отзыва (Active=false);
	// записи не удаляются никогда.
	SaveEntitlement(ctx context.Context, email string, ent *models.Entitlement) error
	// IsEntitled возвращает Active==true; отсутствие записи — false без ошибки.
	IsEntitled(ctx context.Context, email string) (bool, error)
}

// AccessTokenStorage выполняет операции над одноразовыми access-токенами.
type AccessTokenStorage interface {
	// SaveAccessToken сохраняет токен с TTL (неположительный TTL → DefaultAccessTokenTTL).
	SaveAccessToken(ctx context.Context, token string, at *models.AccessToken, ttl time.Duration) error
	// AccessTokenByID находит токен без побочных эффектов.
	AccessTokenByID(ctx context.Context, token string) (*models.AccessToken, error)
	// ConsumeAccessToken атомарно переводит токен в consumed, сохраняя
	// остаточный TTL. Возвращает true ровно один раз за жизнь токена;
	// false — если токен отсутствует или уже погашен.
	ConsumeAccessToken(ctx context.Context, token string) (bool, error)
	// SetAccessTokenClient best-effort записывает отпечаток клиента
	// на уже погашенный токен, не трогая TTL.
	SetAccessTokenClient(ctx context.Context, token, ipHash, uaHash string) error
}

// RecoverTokenStorage выполняет операции над токенами восстановления.
type RecoverTokenStorage interface {
	// SaveRecoverToken сохраняет токен с TTL (неположительный TTL → DefaultRecoverTokenTTL).
	SaveRecoverToken(ctx context.Context, token string, rt *models.RecoverToken, ttl time.Duration) error
	// ConsumeRecoverToken — атомарное чтение-с-удалением. Второй вызов по тому
	// же токену возвращает ErrNotFound; «истёк», «использован» и «не существовал»
	// снаружи неразличимы.
	ConsumeRecoverToken(ctx context.Context, token string) (*models.RecoverToken, error)
}

// SessionStorage выполняет операции над сессиями.
type SessionStorage interface {
	// SaveSession сохраняет сессию с TTL (неположительный TTL → DefaultSessionTTL).
	SaveSession(ctx context.Context, id string, s *models.Session, ttl time.Duration) error
	// SessionByID возвращает живую сессию. Просроченная запись удаляется
	// на месте и отдаётся как ErrNotFound (ленивая очистка).
	SessionByID(ctx context.Context, id string) (*models.Session, error)
	// DeleteSession удаляет сессию; отсутствие записи не является ошибкой.
	DeleteSession(ctx context.Context, id string) error
}

// Storage задаёт контракт работы с хранилищем.
type Storage interface {
	EntitlementStorage
	AccessTokenStorage
	RecoverTokenStorage
	SessionStorage
	Close() error
}
