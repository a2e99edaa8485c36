package analytics

import (
	"time"

	"github.com/fluxoapp/fluxo/models"
)

// SpendingTrend compares total expenses of the current calendar month with
// the immediately preceding one, handling the December-January rollover.
// When the previous month had zero spending the percent change is a fixed
// 100 — a sentinel that avoids division by zero while still signalling new
// spending.
func SpendingTrend(txs []models.Transaction, now time.Time) models.TrendInsight {
	prevYear, prevMonth := now.Year(), now.Month()-1
	if now.Month() == time.January {
		prevYear, prevMonth = now.Year()-1, time.December
	}

	current := monthlySpending(txs, now.Year(), now.Month())
	previous := monthlySpending(txs, prevYear, prevMonth)

	percent := 100.0
	if previous != 0 {
		percent = (current - previous) / previous * 100
	}

	direction := "up"
	if percent < 0 {
		direction = "down"
	}

	return models.TrendInsight{
		Direction:     direction,
		Percent:       percent,
		CurrentSpend:  current,
		PreviousSpend: previous,
	}
}

// CheckBudgets flags every expense category whose current-month spending
// strictly exceeds its monthly limit. Zero flagged categories means the
// user is on track.
func CheckBudgets(txs []models.Transaction, categories []models.Category, now time.Time) models.BudgetAlert {
	spent := TotalByCategory(txs, now)

	alert := models.BudgetAlert{}
	for _, cat := range categories {
		if cat.Type != "expense" || cat.MonthlyLimit <= 0 {
			continue
		}
		if spent[cat.ID] > cat.MonthlyLimit {
			alert.OverBudgetCount++
			alert.Categories = append(alert.Categories, cat.Name)
		}
	}
	alert.OnTrack = alert.OverBudgetCount == 0
	return alert
}

func monthlySpending(txs []models.Transaction, year int, month time.Month) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Type != "expense" {
			continue
		}
		if tx.Date.Year() == year && tx.Date.Month() == month {
			total += tx.Amount
		}
	}
	return total
}
