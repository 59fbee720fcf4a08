package services

import "github.com/custodia-labs/unitconv/internal/core/domain"

// ConvertCurrency converts an amount using the static rate table.
// A currency converted to itself is returned unchanged, whether or not
// the table lists it.
func ConvertCurrency(amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	if rates, ok := currencyRates[from]; ok {
		if rate, ok := rates[to]; ok {
			return amount * rate, nil
		}
	}
	return 0, &domain.RateUnavailableError{From: from, To: to}
}

// CurrencyRate returns the listed rate for a pair, if any.
func CurrencyRate(from, to string) (float64, bool) {
	rate, ok := currencyRates[from][to]
	return rate, ok
}
