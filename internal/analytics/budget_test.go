package analytics_test

import (
	"testing"
	"time"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/models"
)

func TestBudgetProgressClampsAtHundred(t *testing.T) {
	// перерасход не должен показывать больше 100%
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense", MonthlyLimit: 100},
	}
	now := day(2024, time.June, 15)
	txs := []models.Transaction{
		{Amount: 150, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 1)},
	}

	items := analytics.BudgetProgress(txs, cats, now)
	if len(items) != 1 {
		t.Fatalf("ожидали одну строку прогресса, получили %d", len(items))
	}
	if items[0].Percentage != 100 {
		t.Errorf("процент должен обрезаться до 100, получили %v", items[0].Percentage)
	}
	if items[0].Spent != 150 || items[0].Limit != 100 {
		t.Errorf("суммы прогресса: %+v", items[0])
	}
	if items[0].Severity != "critical" {
		t.Errorf("перерасход должен давать critical, получили %s", items[0].Severity)
	}
}

func TestBudgetProgressSeverityBands(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense", MonthlyLimit: 100},
	}
	now := day(2024, time.June, 15)

	cases := []struct {
		spent    float64
		severity string
	}{
		{50, "normal"},
		{75, "normal"}, // ровно 75 ещё не warning
		{80, "warning"},
		{90, "warning"}, // ровно 90 ещё не critical
		{95, "critical"},
	}

	for _, tc := range cases {
		txs := []models.Transaction{
			{Amount: tc.spent, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 1)},
		}
		items := analytics.BudgetProgress(txs, cats, now)
		if items[0].Severity != tc.severity {
			t.Errorf("при расходе %v ожидали %s, получили %s", tc.spent, tc.severity, items[0].Severity)
		}
	}
}

func TestBudgetProgressSkipsCategoriesWithoutLimit(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense"},
		{ID: 2, Name: "Salary", Type: "income", MonthlyLimit: 500},
	}
	now := day(2024, time.June, 15)

	items := analytics.BudgetProgress(nil, cats, now)
	if len(items) != 0 {
		t.Errorf("категории без лимита расходов не должны попадать в прогресс: %+v", items)
	}
}
