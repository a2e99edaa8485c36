package analytics

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/fluxoapp/fluxo/models"
)

// InferSubscriptions reconstructs the logical set of distinct subscriptions
// from expense transactions flagged as recurring. The store has no
// first-class subscription entity, so identity is the lower-cased trimmed
// description — a heuristic, not a foreign key: differently-worded charges
// for one service stay separate, identical descriptions collapse.
//
// Within each group only the most recent charge is kept; its amount and
// recurring day describe the subscription. The second return value is the
// total monthly cost of all subscriptions converted to base currency.
func InferSubscriptions(txs []models.Transaction, now time.Time, base string, rates map[string]float64) ([]models.Subscription, float64) {
	latest := make(map[string]models.Transaction)
	for _, tx := range txs {
		if tx.Type != "expense" || !tx.IsRecurring {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(tx.Description))
		if key == "" {
			key = "unknown"
		}
		if existing, ok := latest[key]; !ok || tx.Date.After(existing.Date) {
			latest[key] = tx
		}
	}

	subs := make([]models.Subscription, 0, len(latest))
	var totalMonthly float64
	for _, tx := range latest {
		nextDue := nextDueDate(tx.RecurringDay, now)
		converted := Convert(tx.Amount, tx.Currency, base, rates)
		totalMonthly += converted
		subs = append(subs, models.Subscription{
			Description:  tx.Description,
			Amount:       converted,
			Currency:     tx.Currency,
			RecurringDay: tx.RecurringDay,
			NextDueDate:  nextDue,
			DaysUntil:    daysUntil(nextDue, now),
		})
	}
	sort.Slice(subs, func(i, j int) bool {
		return strings.ToLower(subs[i].Description) < strings.ToLower(subs[j].Description)
	})
	return subs, totalMonthly
}

// nextDueDate builds the next charge date for a subscription. The recurring
// day is clamped to the last valid day of the target month (day 31 in
// February becomes Feb 28/29); when the candidate in the current month has
// already passed, the charge moves to next month, re-clamped. Without a
// recurring day the default is the first day of next month.
func nextDueDate(recurringDay int, now time.Time) time.Time {
	year, month := now.Year(), now.Month()
	if recurringDay <= 0 {
		return time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())
	}

	day := clampDay(recurringDay, year, month, now.Location())
	candidate := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if candidate.Before(now) {
		day = clampDay(recurringDay, year, month+1, now.Location())
		candidate = time.Date(year, month+1, day, 0, 0, 0, 0, now.Location())
	}
	return candidate
}

// clampDay limits day to the number of days in the given month. time.Date
// normalizes month overflow, so month+1 with day 0 lands on the last day of
// the target month.
func clampDay(day int, year int, month time.Month, loc *time.Location) int {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if day > lastDay {
		return lastDay
	}
	return day
}

func daysUntil(due, now time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
