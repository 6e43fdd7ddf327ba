// Package ledger shapes an account's journal activity into a printable
// ledger: an opening balance row followed by postings in date order, each
// carrying a running balance in the base currency.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/counted-dev/counted/internal/currency"
	"github.com/counted-dev/counted/internal/model"
)

// OpeningDescription labels the synthetic first row of every ledger. The
// opening balance is carried forward once per reporting period, never
// recomputed from postings.
const OpeningDescription = "Opening Balance"

// Row is one printed ledger line. Dr, Cr, and Balance are in the base
// currency; DebitOriginal/CreditOriginal keep the posted amounts in the
// line's own currency.
type Row struct {
	Date           time.Time
	Reference      string
	Description    string
	DebitOriginal  decimal.Decimal
	CreditOriginal decimal.Decimal
	Currency       string
	ExchangeRate   decimal.Decimal
	Dr             decimal.Decimal
	Cr             decimal.Decimal
	Balance        decimal.Decimal
	Counter        []model.CounterLeg
}

// OrphanWarning records a journal line that was skipped because it
// references an account outside the ledger's scope.
type OrphanWarning struct {
	Reference   string
	AccountCode string
}

func (w OrphanWarning) String() string {
	return fmt.Sprintf("line %s skipped: account %q is not in scope", w.Reference, w.AccountCode)
}

// Report is the computed ledger for one account.
type Report struct {
	Account  model.Account
	Opening  decimal.Decimal
	Rows     []Row
	Warnings []OrphanWarning
}

// Partial reports whether any journal lines were skipped, so callers can
// flag an incomplete report instead of presenting silently wrong totals.
func (r Report) Partial() bool {
	return len(r.Warnings) > 0
}

// Closing returns the last running balance.
func (r Report) Closing() decimal.Decimal {
	if len(r.Rows) == 0 {
		return r.Opening
	}
	return r.Rows[len(r.Rows)-1].Balance
}

// Build computes the ledger for account from its journal lines. Lines are
// ordered by date, ties kept in input order. Each line advances the
// running balance exactly once, also when it fans out into one row per
// debit counter leg. Lines for other accounts are skipped and recorded;
// an unknown currency aborts the build. Inputs are never mutated.
func Build(account model.Account, lines []model.JournalLine, opening decimal.Decimal, rates *currency.RateTable) (Report, error) {
	report := Report{Account: account, Opening: opening}

	ordered := make([]model.JournalLine, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	report.Rows = append(report.Rows, Row{
		Description: OpeningDescription,
		Balance:     opening,
	})

	balance := opening
	for _, line := range ordered {
		if line.AccountCode != account.Code {
			report.Warnings = append(report.Warnings, OrphanWarning{
				Reference:   line.Reference,
				AccountCode: line.AccountCode,
			})
			continue
		}

		rate := decimal.NewFromInt(1)
		if line.Currency != "" && line.Currency != rates.Base() {
			var err error
			rate, err = rates.Rate(line.Currency)
			if err != nil {
				return Report{}, fmt.Errorf("line %s: %w", line.Reference, err)
			}
		}

		rows := lineRows(line, rate)
		for i := range rows {
			balance = balance.Add(rows[i].Dr).Sub(rows[i].Cr)
			rows[i].Balance = balance
		}
		report.Rows = append(report.Rows, rows...)
	}
	return report, nil
}

// lineRows converts one journal line into its printed rows. A credit line
// whose counter side holds more than one debit leg fans into one row per
// leg, splitting the credit across the rows so the line still moves the
// running balance by its single net delta. The legs sum to the line
// amount; journal validation enforces that before lines get here.
func lineRows(line model.JournalLine, rate decimal.Decimal) []Row {
	dr := line.Debit.Mul(rate)
	cr := line.Credit.Mul(rate)

	drLegs := line.DebitLegs()
	if line.Credit.IsZero() || len(drLegs) < 2 {
		return []Row{{
			Date:           line.Date,
			Reference:      line.Reference,
			Description:    line.Description,
			DebitOriginal:  line.Debit,
			CreditOriginal: line.Credit,
			Currency:       line.Currency,
			ExchangeRate:   rate,
			Dr:             dr,
			Cr:             cr,
			Counter:        line.Counter,
		}}
	}

	rows := make([]Row, 0, len(drLegs))
	for _, leg := range drLegs {
		rows = append(rows, Row{
			Date:           line.Date,
			Reference:      line.Reference,
			Description:    line.Description,
			CreditOriginal: leg.Amount,
			Currency:       line.Currency,
			ExchangeRate:   rate,
			Cr:             leg.Amount.Mul(rate),
			Counter:        []model.CounterLeg{leg},
		})
	}
	return rows
}
