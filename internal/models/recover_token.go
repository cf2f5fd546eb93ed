package models

import "time"

// RecoverToken — короткоживущий одноразовый токен восстановления доступа.
// Любое чтение является погашением: отдельного неразрушающего get нет.
type RecoverToken struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
