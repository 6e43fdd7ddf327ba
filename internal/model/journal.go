package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side marks which column of a double-entry a leg lands on.
type Side string

const (
	SideDr Side = "dr"
	SideCr Side = "cr"
)

// Valid reports whether s is a known posting side.
func (s Side) Valid() bool {
	return s == SideDr || s == SideCr
}

// CounterLeg is one leg on the opposite side of a journal line, recorded
// for traceability and fan-out display. It never feeds balance math.
type CounterLeg struct {
	Code   string
	Side   Side
	Amount decimal.Decimal
}

// JournalLine is a single posting row affecting one account. Exactly one
// of Debit/Credit is non-zero, stated in Currency (original currency).
type JournalLine struct {
	Date        time.Time
	Reference   string
	Description string
	AccountCode string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Currency    string
	Counter     []CounterLeg
}

// Amount returns the line's one-sided amount regardless of side.
func (l JournalLine) Amount() decimal.Decimal {
	if !l.Debit.IsZero() {
		return l.Debit
	}
	return l.Credit
}

// DebitLegs returns the counter legs posted on the debit side.
func (l JournalLine) DebitLegs() []CounterLeg {
	var legs []CounterLeg
	for _, c := range l.Counter {
		if c.Side == SideDr {
			legs = append(legs, c)
		}
	}
	return legs
}
