package models

import "time"

// Account — счёт с балансом, который пользователь ведёт вручную.
// Баланс не выводится из транзакций.
type Account struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Type      string    `json:"type" db:"type"` // checking, savings, cash, credit, investment, crypto
	Currency  string    `json:"currency" db:"currency"`
	Balance   float64   `json:"balance" db:"balance"`
	Color     string    `json:"color" db:"color"`
	Icon      string    `json:"icon" db:"icon"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
