package analytics

import (
	"sort"

	"github.com/fluxoapp/fluxo/models"
)

// ExpenseBreakdown groups period expenses by category name, largest first.
// Transactions with an orphaned or missing category reference are skipped:
// the breakdown chart only shows named buckets.
func ExpenseBreakdown(txs []models.Transaction, categories []models.Category) []models.CategoryValue {
	names := make(map[int]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	totals := make(map[string]float64)
	for _, tx := range txs {
		if tx.Type != "expense" || tx.CategoryID == nil {
			continue
		}
		name, ok := names[*tx.CategoryID]
		if !ok {
			continue
		}
		totals[name] += tx.Amount
	}

	breakdown := make([]models.CategoryValue, 0, len(totals))
	for name, value := range totals {
		breakdown = append(breakdown, models.CategoryValue{CategoryName: name, Value: value})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Value != breakdown[j].Value {
			return breakdown[i].Value > breakdown[j].Value
		}
		return breakdown[i].CategoryName < breakdown[j].CategoryName
	})
	return breakdown
}

// TotalAccountsBalance sums manually-maintained account balances converted
// to the base currency.
func TotalAccountsBalance(accounts []models.Account, base string, rates map[string]float64) float64 {
	var total float64
	for _, account := range accounts {
		total += Convert(account.Balance, account.Currency, base, rates)
	}
	return total
}
