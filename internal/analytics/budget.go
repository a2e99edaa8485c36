package analytics

import (
	"time"

	"github.com/fluxoapp/fluxo/models"
)

// Display thresholds for the budget progress bars.
const (
	criticalThreshold = 90
	warningThreshold  = 75
)

// BudgetProgress computes, for every expense category with a positive
// monthly limit, the share of the limit consumed this month. The percentage
// is clamped at 100 — an over-spent category never renders past the end of
// its bar; severity banding is what signals trouble.
func BudgetProgress(txs []models.Transaction, categories []models.Category, now time.Time) []models.BudgetProgressItem {
	spent := TotalByCategory(txs, now)

	var items []models.BudgetProgressItem
	for _, cat := range categories {
		if cat.Type != "expense" || cat.MonthlyLimit <= 0 {
			continue
		}
		s := spent[cat.ID]
		percentage := s / cat.MonthlyLimit * 100
		if percentage > 100 {
			percentage = 100
		}
		severity := "normal"
		if percentage > criticalThreshold {
			severity = "critical"
		} else if percentage > warningThreshold {
			severity = "warning"
		}
		items = append(items, models.BudgetProgressItem{
			CategoryName: cat.Name,
			Spent:        s,
			Limit:        cat.MonthlyLimit,
			Percentage:   percentage,
			Severity:     severity,
		})
	}
	return items
}
