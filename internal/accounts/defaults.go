package accounts

import "github.com/counted-dev/counted/internal/model"

// DefaultChart returns the seed chart of accounts for a new company.
// Codes follow the dotted hierarchy convention: one-digit main accounts,
// three-digit groups, dotted detail accounts.
func DefaultChart(companyID string) []model.Account {
	mk := func(code, parent, name string, typ model.AccountType, category string, main bool) model.Account {
		return model.Account{
			CompanyID:     companyID,
			Code:          code,
			ParentCode:    parent,
			Name:          name,
			Type:          typ,
			Category:      category,
			IsMainAccount: main,
		}
	}
	return []model.Account{
		mk("1", "", "Assets", model.AccountTypeAsset, model.SectionCurrentAssets, true),
		mk("101", "1", "Cash and Cash Equivalents", model.AccountTypeAsset, model.SectionCurrentAssets, false),
		mk("101.01", "101", "Cash on Hand", model.AccountTypeAsset, model.SectionCurrentAssets, false),
		mk("101.02", "101", "Bank", model.AccountTypeAsset, model.SectionCurrentAssets, false),
		mk("102", "1", "Accounts Receivable", model.AccountTypeAsset, model.SectionCurrentAssets, false),
		mk("103", "1", "Fixed Assets", model.AccountTypeAsset, model.SectionNonCurrentAssets, false),
		mk("2", "", "Liabilities", model.AccountTypeLiability, model.SectionCurrentLiabilities, true),
		mk("201", "2", "Accounts Payable", model.AccountTypeLiability, model.SectionCurrentLiabilities, false),
		mk("202", "2", "Long-term Debt", model.AccountTypeLiability, model.SectionNonCurrentLiabilities, false),
		mk("3", "", "Equity", model.AccountTypeEquity, model.SectionEquity, true),
		mk("301", "3", "Share Capital", model.AccountTypeEquity, model.SectionEquity, false),
		mk("302", "3", "Retained Earnings", model.AccountTypeEquity, model.SectionEquity, false),
		mk("4", "", "Income", model.AccountTypeIncome, model.SectionRevenue, true),
		mk("401", "4", "Sales Revenue", model.AccountTypeIncome, model.SectionRevenue, false),
		mk("402", "4", "Other Income", model.AccountTypeIncome, model.SectionOtherIncome, false),
		mk("5", "", "Expenses", model.AccountTypeExpense, model.SectionOperatingExpenses, true),
		mk("501", "5", "Cost of Sales", model.AccountTypeExpense, model.SectionCostOfSales, false),
		mk("502", "5", "Operating Expenses", model.AccountTypeExpense, model.SectionOperatingExpenses, false),
		mk("502.01", "502", "Salaries and Wages", model.AccountTypeExpense, model.SectionOperatingExpenses, false),
		mk("502.02", "502", "Office Supplies", model.AccountTypeExpense, model.SectionOperatingExpenses, false),
	}
}
