package models

import "time"

// AccessToken — одноразовый токен доступа, выпускаемый при подтверждении покупки.
// Живёт в хранилище с TTL (по умолчанию 24 часа); после обмена на сессию
// помечается Consumed и продолжает истекать по исходному расписанию —
// запись служит аудит-следом в пределах окна TTL, повторный обмен невозможен.
type AccessToken struct {
	Email     string
	CreatedAt time.Time
	Consumed  bool

	// Лёгкий отпечаток клиента, заполняется при обмене. Только для ручного
	// разбора инцидентов, ни на что не влияет.
	IPHash string
	UAHash string
}
