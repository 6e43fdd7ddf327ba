package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/counted-dev/counted/internal/model"
)

// ValidationError describes a single invariant violation on a journal line.
type ValidationError struct {
	Invariant   int
	Reference   string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Reference, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate enforces posting invariants on a set of journal lines:
//  1. exactly one of debit/credit per line
//  2. the line's account exists in the chart of accounts
//  3. counter legs carry a valid side tag
//  4. counter legs, when present, balance the line: legs on the side
//     opposite the line sum to the line amount
func Validate(lines []model.JournalLine, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	for _, line := range lines {
		hasDebit := !line.Debit.IsZero()
		hasCredit := !line.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Reference:   line.Reference,
				Description: "line must have exactly one of debit or credit",
			})
			continue
		}

		if !accounts.Exists(line.AccountCode) {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Reference:   line.Reference,
				Description: fmt.Sprintf("unknown account %q", line.AccountCode),
			})
		}

		badSide := false
		for _, leg := range line.Counter {
			if !leg.Side.Valid() {
				badSide = true
				errs = append(errs, ValidationError{
					Invariant:   3,
					Reference:   line.Reference,
					Description: fmt.Sprintf("counter leg %s has invalid side %q", leg.Code, leg.Side),
				})
			}
		}
		if badSide || len(line.Counter) == 0 {
			continue
		}

		opposite := model.SideCr
		if hasCredit {
			opposite = model.SideDr
		}
		sum := decimal.Zero
		for _, leg := range line.Counter {
			if leg.Side == opposite {
				sum = sum.Add(leg.Amount)
			}
		}
		if !sum.Equal(line.Amount()) {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Reference:   line.Reference,
				Description: fmt.Sprintf("counter legs on %s side sum to %s, line amount is %s", opposite, sum, line.Amount()),
			})
		}
	}
	return errs
}
