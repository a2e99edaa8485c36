package models

import "time"

// Subscription — восстановленная из повторяющихся расходов подписка.
// Отдельной сущности в хранилище нет, ключом служит описание транзакции.
type Subscription struct {
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"` // в базовой валюте
	Currency     string    `json:"currency"`
	RecurringDay int       `json:"recurring_day"`
	NextDueDate  time.Time `json:"next_due_date"`
	DaysUntil    int       `json:"days_until"`
}
