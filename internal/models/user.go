package models

import "time"

// User представляет пользователя на сервере
type User struct {
	CreatedAt   time.Time  `json:"created_at"`           // CreatedAt время регистрации
	LastLogin   *time.Time `json:"last_login,omitempty"` // LastLogin время последнего входа
	ID          string     `json:"id"`                   // ID UUID пользователя
	Username    string     `json:"username"`             // Username уникальное имя
	AuthKeyHash string     `json:"auth_key_hash"`        // AuthKeyHash SHA256 хеш auth_key
	PublicSalt  string     `json:"public_salt"`          // PublicSalt base64 соль для Argon2id
}
