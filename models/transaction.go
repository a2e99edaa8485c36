package models

import "time"

// Transaction хранит сумму всегда положительной, знак определяется полем Type.
type Transaction struct {
	ID           int       `json:"id" db:"id"`
	UserID       int       `json:"user_id" db:"user_id"`
	CategoryID   *int      `json:"category_id" db:"category_id"`
	Amount       float64   `json:"amount" db:"amount"`
	Type         string    `json:"type" db:"type"` // income или expense
	Date         time.Time `json:"date" db:"date"`
	Description  string    `json:"description" db:"description"`
	Currency     string    `json:"currency" db:"currency"` // пустая строка = USD (старые записи)
	IsRecurring  bool      `json:"is_recurring" db:"is_recurring"`
	RecurringDay int       `json:"recurring_day" db:"recurring_day"` // день месяца 1-31, 0 = не задан
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
