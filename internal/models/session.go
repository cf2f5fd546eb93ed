package models

import "time"

// RecoverOrigin — сентинел в поле Token у сессий, созданных через
// восстановление доступа (а не через обмен access-токена).
const RecoverOrigin = "recover"

// Session — сессия доступа к защищённому контенту.
// Идентификатор сессии уходит клиенту только в httpOnly-cookie.
type Session struct {
	Token     string // access-токен, породивший сессию, либо RecoverOrigin
	Email     string
	CreatedAt time.Time
	ExpiresAt time.Time
}
