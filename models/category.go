package models

import "time"

type Category struct {
	ID           int       `json:"id"`
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`          // income или expense
	MonthlyLimit float64   `json:"monthly_limit"` // 0 = лимит не задан
	CreatedAt    time.Time `json:"created_at"`
}
