package analytics

import "strings"

// FallbackCurrency is assumed for legacy transactions saved without a
// currency code.
const FallbackCurrency = "USD"

// Convert normalizes an amount from its source currency into the base
// currency. The rate table is fetched per base-currency selection, so every
// rate is already expressed in base-currency units per one unit of the
// tracked asset and conversion is a single multiply.
//
// A missing rate fails open: the amount is returned unconverted so an exotic
// currency without a quote never breaks dashboard totals.
func Convert(amount float64, source, base string, rates map[string]float64) float64 {
	if source == "" {
		source = FallbackCurrency
	}
	if strings.EqualFold(source, base) {
		return amount
	}
	if rate, ok := rates[source]; ok {
		return amount * rate
	}
	if rate, ok := rates[strings.ToUpper(source)]; ok {
		return amount * rate
	}
	return amount
}
