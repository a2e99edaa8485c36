package analytics

import (
	"sort"
	"time"

	"github.com/fluxoapp/fluxo/models"
)

// TotalByType sums the converted amounts of all transactions with the given
// type. The input list is expected to be pre-filtered to the reporting
// period; this is a pure fold and never mutates its arguments.
func TotalByType(txs []models.Transaction, txType, base string, rates map[string]float64) float64 {
	var total float64
	for _, tx := range txs {
		if tx.Type != txType {
			continue
		}
		total += Convert(tx.Amount, tx.Currency, base, rates)
	}
	return total
}

// TotalByCategory maps category id to the summed expense amount for the
// calendar month of now, regardless of the broader reporting period. The
// month scoping is intentional: the result feeds budget comparison, and
// budgets are monthly.
func TotalByCategory(txs []models.Transaction, now time.Time) map[int]float64 {
	totals := make(map[int]float64)
	for _, tx := range txs {
		if tx.Type != "expense" || tx.CategoryID == nil {
			continue
		}
		if !sameMonth(tx.Date, now) {
			continue
		}
		totals[*tx.CategoryID] += tx.Amount
	}
	return totals
}

// TotalByDate builds the daily income/expense series in base currency,
// sorted ascending by calendar day via the local-date parse.
func TotalByDate(txs []models.Transaction, base string, rates map[string]float64) []models.DailyPoint {
	byDate := make(map[string]*models.DailyPoint)
	for _, tx := range txs {
		key := FormatLocalDate(tx.Date)
		point, ok := byDate[key]
		if !ok {
			point = &models.DailyPoint{Date: key}
			byDate[key] = point
		}
		converted := Convert(tx.Amount, tx.Currency, base, rates)
		switch tx.Type {
		case "income":
			point.Income += converted
		case "expense":
			point.Expense += converted
		}
	}

	series := make([]models.DailyPoint, 0, len(byDate))
	for _, point := range byDate {
		series = append(series, *point)
	}
	sort.Slice(series, func(i, j int) bool {
		return ParseLocalDate(series[i].Date).Before(ParseLocalDate(series[j].Date))
	})
	return series
}
