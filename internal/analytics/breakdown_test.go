package analytics_test

import (
	"testing"
	"time"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/models"
)

func TestExpenseBreakdown(t *testing.T) {
	cats := []models.Category{
		{ID: 1, Name: "Food", Type: "expense"},
		{ID: 2, Name: "Transport", Type: "expense"},
	}
	txs := []models.Transaction{
		{Amount: 30, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 1)},
		{Amount: 20, Type: "expense", CategoryID: intPtr(1), Date: day(2024, time.June, 2)},
		{Amount: 70, Type: "expense", CategoryID: intPtr(2), Date: day(2024, time.June, 3)},
		{Amount: 99, Type: "income", CategoryID: intPtr(1), Date: day(2024, time.June, 4)}, // доход не попадает
		{Amount: 99, Type: "expense", Date: day(2024, time.June, 5)},                       // без категории
		{Amount: 99, Type: "expense", CategoryID: intPtr(42), Date: day(2024, time.June, 6)}, // осиротевшая ссылка
	}

	breakdown := analytics.ExpenseBreakdown(txs, cats)
	if len(breakdown) != 2 {
		t.Fatalf("в разбивке должно быть 2 категории, получили %d", len(breakdown))
	}
	if breakdown[0].CategoryName != "Transport" || breakdown[0].Value != 70 {
		t.Errorf("первая строка разбивки: %+v, хотели Transport 70", breakdown[0])
	}
	if breakdown[1].CategoryName != "Food" || breakdown[1].Value != 50 {
		t.Errorf("вторая строка разбивки: %+v, хотели Food 50", breakdown[1])
	}
}

func TestTotalAccountsBalance(t *testing.T) {
	accounts := []models.Account{
		{Balance: 100, Currency: "USD"},
		{Balance: 10, Currency: "EUR"},
		{Balance: -50, Currency: "USD"}, // кредитка с минусом
	}
	rates := map[string]float64{"EUR": 2}

	if got := analytics.TotalAccountsBalance(accounts, "USD", rates); got != 70 {
		t.Errorf("общий баланс счетов: получили %v, хотели 70", got)
	}
}
