package model

import "github.com/shopspring/decimal"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// CreditNatured reports whether the type carries a natural credit balance.
func (t AccountType) CreditNatured() bool {
	switch t {
	case AccountTypeLiability, AccountTypeEquity, AccountTypeIncome:
		return true
	}
	return false
}

// Account represents a row in chart-of-accounts.csv. Accounts form a
// hierarchy through ParentCode; an empty ParentCode marks a root account.
type Account struct {
	CompanyID     string
	Code          string
	ParentCode    string // "" = root
	Name          string
	Type          AccountType
	Category      string
	BalanceDr     decimal.Decimal
	BalanceCr     decimal.Decimal
	IsMainAccount bool
}

// Balance returns the net balance, positive when debit-natured.
func (a Account) Balance() decimal.Decimal {
	return a.BalanceDr.Sub(a.BalanceCr)
}

// NaturalBalance returns the balance signed by the account type's nature,
// so a healthy liability or income account reads positive.
func (a Account) NaturalBalance() decimal.Decimal {
	if a.Type.CreditNatured() {
		return a.BalanceCr.Sub(a.BalanceDr)
	}
	return a.BalanceDr.Sub(a.BalanceCr)
}
