// Package currency normalizes multi-currency amounts into a base currency
// using a fixed rate table. All arithmetic is exact decimal; rounding is
// left to presentation.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnknownCurrencyError reports a currency with no entry in the rate table.
// A missing rate is a data error; defaulting to rate 1 would silently
// misstate every total built on the amount.
type UnknownCurrencyError struct {
	Currency string
}

func (e UnknownCurrencyError) Error() string {
	return fmt.Sprintf("unknown currency %q: no exchange rate configured", e.Currency)
}

// RateTable maps currency codes to multipliers into a base currency.
type RateTable struct {
	base  string
	rates map[string]decimal.Decimal
}

// NewRateTable builds a RateTable. The base currency is pinned at rate 1;
// a conflicting explicit rate for it is rejected.
func NewRateTable(base string, rates map[string]decimal.Decimal) (*RateTable, error) {
	if base == "" {
		return nil, fmt.Errorf("base currency is required")
	}
	t := &RateTable{base: base, rates: make(map[string]decimal.Decimal, len(rates)+1)}
	for code, rate := range rates {
		if !rate.IsPositive() {
			return nil, fmt.Errorf("rate for %q must be positive, got %s", code, rate)
		}
		t.rates[code] = rate
	}
	one := decimal.NewFromInt(1)
	if r, ok := t.rates[base]; ok && !r.Equal(one) {
		return nil, fmt.Errorf("base currency %q must have rate 1, got %s", base, r)
	}
	t.rates[base] = one
	return t, nil
}

// Base returns the base currency code.
func (t *RateTable) Base() string { return t.base }

// Rate returns the multiplier from currency into the base currency.
func (t *RateTable) Rate(currency string) (decimal.Decimal, error) {
	r, ok := t.rates[currency]
	if !ok {
		return decimal.Decimal{}, UnknownCurrencyError{Currency: currency}
	}
	return r, nil
}

// Normalize converts amount from currency into the base currency. An empty
// currency is treated as already being in the base currency.
func (t *RateTable) Normalize(amount decimal.Decimal, currency string) (decimal.Decimal, error) {
	if currency == "" || currency == t.base {
		return amount, nil
	}
	r, err := t.Rate(currency)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(r), nil
}
