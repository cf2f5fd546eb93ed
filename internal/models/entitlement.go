package models

import "time"

// Источники изменения права доступа.
const (
	SourceWebhook   = "webhook"
	SourceAdminSeed = "admin_seed"
)

// Entitlement — бессрочная запись о праве доступа к продукту.
// Ключ — нормализованный email покупателя. Запись никогда не удаляется:
// отзыв доступа только переводит Active в false.
type Entitlement struct {
	Active    bool
	UpdatedAt time.Time
	Source    string // webhook | admin_seed
	Event     string // имя события провайдера, если источник — вебхук
}
