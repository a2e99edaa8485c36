package analytics_test

import (
	"testing"
	"time"

	"github.com/fluxoapp/fluxo/internal/analytics"
	"github.com/fluxoapp/fluxo/models"
)

func TestInferSubscriptionsDeduplicatesByDescription(t *testing.T) {
	// два списания Netflix с разными датами сворачиваются в одну подписку,
	// берётся сумма и день более позднего
	txs := []models.Transaction{
		{Amount: 10, Type: "expense", Description: "Netflix", IsRecurring: true, RecurringDay: 5, Date: day(2024, time.April, 5)},
		{Amount: 12, Type: "expense", Description: "netflix ", IsRecurring: true, RecurringDay: 7, Date: day(2024, time.May, 7)},
		{Amount: 99, Type: "expense", Description: "Gym", IsRecurring: false, Date: day(2024, time.May, 1)}, // не recurring
		{Amount: 99, Type: "income", Description: "Salary", IsRecurring: true, Date: day(2024, time.May, 1)}, // доход не подписка
	}
	now := day(2024, time.May, 20)

	subs, total := analytics.InferSubscriptions(txs, now, "USD", nil)
	if len(subs) != 1 {
		t.Fatalf("должна остаться одна подписка, получили %d", len(subs))
	}
	if subs[0].Amount != 12 || subs[0].RecurringDay != 7 {
		t.Errorf("представителем должно быть позднее списание: %+v", subs[0])
	}
	if total != 12 {
		t.Errorf("месячная стоимость подписок: получили %v, хотели 12", total)
	}
}

func TestNextDueDateClampsToEndOfMonth(t *testing.T) {
	// 31-е число в невисокосном феврале должно стать 28 февраля,
	// а не 3 марта и не невалидной датой
	txs := []models.Transaction{
		{Amount: 15, Type: "expense", Description: "Spotify", IsRecurring: true, RecurringDay: 31, Date: day(2023, time.January, 31)},
	}
	now := day(2023, time.February, 20)

	subs, _ := analytics.InferSubscriptions(txs, now, "USD", nil)
	if len(subs) != 1 {
		t.Fatalf("подписка не найдена")
	}
	due := subs[0].NextDueDate
	if due.Year() != 2023 || due.Month() != time.February || due.Day() != 28 {
		t.Errorf("дата следующего списания: получили %v, хотели 28 февраля 2023", due)
	}
	if subs[0].DaysUntil != 8 {
		t.Errorf("дней до списания: получили %d, хотели 8", subs[0].DaysUntil)
	}
}

func TestNextDueDateAdvancesToNextMonth(t *testing.T) {
	// день уже прошёл в текущем месяце: списание переносится на следующий,
	// с повторной обрезкой по длине месяца
	txs := []models.Transaction{
		{Amount: 9, Type: "expense", Description: "iCloud", IsRecurring: true, RecurringDay: 31, Date: day(2024, time.January, 31)},
	}
	now := day(2024, time.March, 31).Add(12 * time.Hour) // 31 марта, полдень

	subs, _ := analytics.InferSubscriptions(txs, now, "USD", nil)
	due := subs[0].NextDueDate
	if due.Month() != time.April || due.Day() != 30 {
		t.Errorf("перенос на следующий месяц: получили %v, хотели 30 апреля", due)
	}
}

func TestSubscriptionWithoutRecurringDay(t *testing.T) {
	// без recurring_day ожидаем первое число следующего месяца
	txs := []models.Transaction{
		{Amount: 20, Type: "expense", Description: "VPN", IsRecurring: true, Date: day(2024, time.June, 3)},
	}
	now := day(2024, time.June, 10)

	subs, _ := analytics.InferSubscriptions(txs, now, "USD", nil)
	due := subs[0].NextDueDate
	if due.Year() != 2024 || due.Month() != time.July || due.Day() != 1 {
		t.Errorf("дата по умолчанию: получили %v, хотели 1 июля 2024", due)
	}
}

func TestSubscriptionsEmptyDescriptionGrouped(t *testing.T) {
	// записи без описания сваливаются в одну корзину "unknown"
	txs := []models.Transaction{
		{Amount: 5, Type: "expense", IsRecurring: true, Date: day(2024, time.May, 1)},
		{Amount: 6, Type: "expense", Description: "   ", IsRecurring: true, Date: day(2024, time.May, 2)},
	}
	now := day(2024, time.May, 20)

	subs, total := analytics.InferSubscriptions(txs, now, "USD", nil)
	if len(subs) != 1 {
		t.Fatalf("записи без описания должны склеиться: получили %d подписок", len(subs))
	}
	if total != 6 {
		t.Errorf("берётся более поздняя запись: получили %v, хотели 6", total)
	}
}

func TestSubscriptionsConvertedToBaseCurrency(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 10, Type: "expense", Description: "Netflix", Currency: "EUR", IsRecurring: true, RecurringDay: 1, Date: day(2024, time.May, 1)},
		{Amount: 0.5, Type: "expense", Description: "Cloud", Currency: "BTC", IsRecurring: true, RecurringDay: 2, Date: day(2024, time.May, 2)},
	}
	now := day(2024, time.May, 20)
	rates := map[string]float64{"EUR": 1.5, "BTC": 90000}

	_, total := analytics.InferSubscriptions(txs, now, "USD", rates)
	if total != 45015 {
		t.Errorf("месячная стоимость в базовой валюте: получили %v, хотели 45015", total)
	}
}
