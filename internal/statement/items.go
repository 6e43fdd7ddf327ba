package statement

import "github.com/counted-dev/counted/internal/model"

// Default section orders for the two statements the dashboard prints.
// Layout order is regulatory, not alphabetical.
var (
	PositionSectionOrder = []string{
		model.SectionCurrentAssets,
		model.SectionNonCurrentAssets,
		model.SectionCurrentLiabilities,
		model.SectionNonCurrentLiabilities,
		model.SectionEquity,
	}
	IncomeSectionOrder = []string{
		model.SectionRevenue,
		model.SectionOtherIncome,
		model.SectionCostOfSales,
		model.SectionOperatingExpenses,
	}
)

// ItemsFromAccounts extracts statement line items from a chart of
// accounts: one item per non-main account with activity, keyed by account
// code, sectioned by the account's category. Accounts without a category
// fall back to a section derived from their type. Amounts are signed by
// the account type's nature.
func ItemsFromAccounts(accounts []model.Account) []model.StatementLineItem {
	var items []model.StatementLineItem
	for _, a := range accounts {
		if a.IsMainAccount {
			continue
		}
		if a.BalanceDr.IsZero() && a.BalanceCr.IsZero() {
			continue
		}
		items = append(items, model.StatementLineItem{
			Key:     a.Code,
			Label:   a.Name,
			Section: sectionFor(a),
			Ending:  a.NaturalBalance(),
			Pattern: a.Code,
		})
	}
	return items
}

func sectionFor(a model.Account) string {
	if a.Category != "" {
		return a.Category
	}
	switch a.Type {
	case model.AccountTypeAsset:
		return model.SectionCurrentAssets
	case model.AccountTypeLiability:
		return model.SectionCurrentLiabilities
	case model.AccountTypeEquity:
		return model.SectionEquity
	case model.AccountTypeIncome:
		return model.SectionRevenue
	case model.AccountTypeExpense:
		return model.SectionOperatingExpenses
	}
	return string(a.Type)
}
