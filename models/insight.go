package models

// TrendInsight сравнивает расходы текущего месяца с предыдущим.
type TrendInsight struct {
	Direction     string  `json:"direction"` // up или down
	Percent       float64 `json:"percent"`
	CurrentSpend  float64 `json:"current_spend"`
	PreviousSpend float64 `json:"previous_spend"`
}

// BudgetAlert — сигнал о категориях с превышенным месячным лимитом.
type BudgetAlert struct {
	OverBudgetCount int      `json:"over_budget_count"`
	Categories      []string `json:"categories"`
	OnTrack         bool     `json:"on_track"`
}

// BudgetProgressItem — прогресс бюджета одной категории.
type BudgetProgressItem struct {
	CategoryName string  `json:"category_name"`
	Spent        float64 `json:"spent"`
	Limit        float64 `json:"limit"`
	Percentage   float64 `json:"percentage"` // обрезается до 100
	Severity     string  `json:"severity"`   // normal, warning, critical
}

// CategoryValue — сумма расходов одной категории для разбивки.
type CategoryValue struct {
	CategoryName string  `json:"category_name"`
	Value        float64 `json:"value"`
}

// DailyPoint — точка дневного ряда доходов и расходов.
type DailyPoint struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}
