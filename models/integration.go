package models

import "time"

// Integration хранит зашифрованные ключи внешней биржи (AES-GCM + base64).
type Integration struct {
	ID                 int       `json:"id" db:"id"`
	UserID             int       `json:"user_id" db:"user_id"`
	Provider           string    `json:"provider" db:"provider"` // пока только binance
	EncryptedAPIKey    string    `json:"-" db:"encrypted_api_key"`
	EncryptedAPISecret string    `json:"-" db:"encrypted_api_secret"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
}
