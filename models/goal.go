package models

import "time"

// Goal — накопительная цель ("копилка").
type Goal struct {
	ID            int        `json:"id" db:"id"`
	UserID        int        `json:"user_id" db:"user_id"`
	Name          string     `json:"name" db:"name"`
	TargetAmount  float64    `json:"target_amount" db:"target_amount"`
	CurrentAmount float64    `json:"current_amount" db:"current_amount"`
	TargetDate    *time.Time `json:"target_date" db:"target_date"`
	Color         string     `json:"color" db:"color"`
	Icon          string     `json:"icon" db:"icon"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

func (g *Goal) RemainingAmount() float64 {
	return g.TargetAmount - g.CurrentAmount
}

func (g *Goal) IsReached() bool {
	return g.CurrentAmount >= g.TargetAmount
}
