package models

type UserSettings struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	BaseCurrency string `json:"base_currency"` // по умолчанию USD
	Theme        string `json:"theme"`
}
