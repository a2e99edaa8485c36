package analytics_test

import (
	"testing"

	"github.com/fluxoapp/fluxo/internal/analytics"
)

func TestConvertIdentity(t *testing.T) {
	rates := map[string]float64{"EUR": 1.08, "BTC": 95000}

	for _, currency := range []string{"USD", "EUR", "BTC", "XYZ"} {
		got := analytics.Convert(250, currency, currency, rates)
		if got != 250 {
			t.Errorf("конвертация %s -> %s изменила сумму: получили %v, хотели 250", currency, currency, got)
		}
	}

	// регистр кода не должен влиять
	if got := analytics.Convert(100, "usd", "USD", rates); got != 100 {
		t.Errorf("конвертация usd -> USD изменила сумму: получили %v", got)
	}
}

func TestConvertMultipliesByRate(t *testing.T) {
	rates := map[string]float64{"EUR": 1.08, "BTC": 95000}

	if got := analytics.Convert(100, "EUR", "USD", rates); got != 108 {
		t.Errorf("конвертация EUR -> USD: получили %v, хотели 108", got)
	}
	if got := analytics.Convert(0.5, "BTC", "USD", rates); got != 47500 {
		t.Errorf("конвертация BTC -> USD: получили %v, хотели 47500", got)
	}
	// код в нижнем регистре находит курс по верхнему
	if got := analytics.Convert(100, "eur", "USD", rates); got != 108 {
		t.Errorf("конвертация eur -> USD: получили %v, хотели 108", got)
	}
}

func TestConvertMissingRateFallsOpen(t *testing.T) {
	// пустая таблица курсов: сумма проходит без изменений
	if got := analytics.Convert(77, "EUR", "USD", map[string]float64{}); got != 77 {
		t.Errorf("конвертация без курса должна вернуть сумму как есть: получили %v", got)
	}
	if got := analytics.Convert(77, "XYZ", "USD", map[string]float64{"EUR": 1.08}); got != 77 {
		t.Errorf("конвертация неизвестной валюты должна вернуть сумму как есть: получили %v", got)
	}
}

func TestConvertEmptyCurrencyUsesFallback(t *testing.T) {
	rates := map[string]float64{"USD": 0.92}

	// пустой код валюты трактуется как USD
	if got := analytics.Convert(100, "", "EUR", rates); got != 92 {
		t.Errorf("пустая валюта должна конвертироваться как USD: получили %v, хотели 92", got)
	}
	if got := analytics.Convert(100, "", "USD", rates); got != 100 {
		t.Errorf("пустая валюта при базовой USD: получили %v, хотели 100", got)
	}
}
