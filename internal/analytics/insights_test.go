package analytics_test

import (
	"testing"
	"time"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/models"
)

func TestSpendingTrendZeroBaseline(t *testing.T) {
	// при нулевых расходах прошлого месяца процент фиксируется на 100
	txs := []models.Transaction{
		{Amount: 50, Type: "expense", Date: day(2024, time.June, 10)},
	}
	now := day(2024, time.June, 15)

	trend := analytics.SpendingTrend(txs, now)
	if trend.Direction != "up" || trend.Percent != 100 {
		t.Errorf("тренд при нулевой базе: получили %s %v, хотели up 100", trend.Direction, trend.Percent)
	}
	if trend.CurrentSpend != 50 || trend.PreviousSpend != 0 {
		t.Errorf("суммы тренда: получили %v и %v, хотели 50 и 0", trend.CurrentSpend, trend.PreviousSpend)
	}
}

func TestSpendingTrendDown(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 50, Type: "expense", Date: day(2024, time.June, 10)},
		{Amount: 200, Type: "expense", Date: day(2024, time.May, 10)},
	}
	now := day(2024, time.June, 15)

	trend := analytics.SpendingTrend(txs, now)
	if trend.Direction != "down" {
		t.Errorf("тренд должен быть down, получили %s", trend.Direction)
	}
	if trend.Percent != -75 {
		t.Errorf("процент изменения: получили %v, хотели -75", trend.Percent)
	}
}

func TestSpendingTrendYearRollover(t *testing.T) {
	// январь сравнивается с декабрём прошлого года
	txs := []models.Transaction{
		{Amount: 100, Type: "expense", Date: day(2024, time.January, 5)},
		{Amount: 50, Type: "expense", Date: day(2023, time.December, 20)},
	}
	now := day(2024, time.January, 15)

	trend := analytics.SpendingTrend(txs, now)
	if trend.PreviousSpend != 50 {
		t.Errorf("декабрь прошлого года не учтён: получили %v, хотели 50", trend.PreviousSpend)
	}
	if trend.Direction != "up" || trend.Percent != 100 {
		t.Errorf("тренд на переходе года: получили %s %v, хотели up 100", trend.Direction, trend.Percent)
	}
}

func TestCheckBudgetsFlagsOverspent(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense", MonthlyLimit: 100},
		{ID: 2, Name: "Transport", Type: "expense", MonthlyLimit: 100},
		{ID: 3, Name: "Salary", Type: "income", MonthlyLimit: 100}, // доходная категория не проверяется
		{ID: 4, Name: "Fun", Type: "expense"},                      // без лимита
	}
	now := day(2024, time.June, 15)
	txs := []models.Transaction{
		{Amount: 150, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 1)},
		{Amount: 100, Type: "expense", CategoryID: intPtr(2), Date: day(2024, time.June, 2)}, // ровно лимит, не превышение
	}

	alert := analytics.CheckBudgets(txs, cats, now)
	if alert.OverBudgetCount != 1 {
		t.Fatalf("превышенных категорий: получили %d, хотели 1", alert.OverBudgetCount)
	}
	if alert.Categories[0] != "Food" {
		t.Errorf("превышена не та категория: %v", alert.Categories)
	}
	if alert.OnTrack {
		t.Errorf("при превышении OnTrack должен быть false")
	}
}

func TestCheckBudgetsOnTrack(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense", MonthlyLimit: 100},
	}
	now := day(2024, time.June, 15)
	txs := []models.Transaction{
		{Amount: 30, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 1)},
	}

	alert := analytics.CheckBudgets(txs, cats, now)
	if !alert.OnTrack || alert.OverBudgetCount != 0 {
		t.Errorf("без превышений ожидаем OnTrack: %+v", alert)
	}
}
