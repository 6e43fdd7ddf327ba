package currency

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Format renders an exact decimal amount for display in the given
// currency, using the currency's registered fraction and symbol. This is
// the only place amounts are rounded.
func Format(amount decimal.Decimal, code string) string {
	cur := *money.New(0, code).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
