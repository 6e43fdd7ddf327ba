package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAccountBalance(t *testing.T) {
	a := Account{Type: AccountTypeAsset, BalanceDr: dec("500"), BalanceCr: dec("120")}
	assert.True(t, a.Balance().Equal(dec("380")))
	assert.True(t, a.NaturalBalance().Equal(dec("380")))

	l := Account{Type: AccountTypeLiability, BalanceDr: dec("50"), BalanceCr: dec("400")}
	assert.True(t, l.Balance().Equal(dec("-350")))
	assert.True(t, l.NaturalBalance().Equal(dec("350")))
}

func TestAccountTypeValid(t *testing.T) {
	for _, typ := range []AccountType{AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense} {
		assert.True(t, typ.Valid())
	}
	assert.False(t, AccountType("revenue").Valid())
	assert.False(t, AccountType("").Valid())
}

func TestJournalLineAmountAndDebitLegs(t *testing.T) {
	l := JournalLine{
		Credit: dec("100"),
		Counter: []CounterLeg{
			{Code: "a", Side: SideDr, Amount: dec("60")},
			{Code: "b", Side: SideCr, Amount: dec("5")},
			{Code: "c", Side: SideDr, Amount: dec("40")},
		},
	}
	assert.True(t, l.Amount().Equal(dec("100")))

	legs := l.DebitLegs()
	assert.Len(t, legs, 2)
	assert.Equal(t, "a", legs[0].Code)
	assert.Equal(t, "c", legs[1].Code)
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, TransactionStatus("draft").Valid())

	assert.True(t, DebtActive.Valid())
	assert.True(t, DebtPaid.Valid())
	assert.True(t, DebtOverdue.Valid())
	assert.False(t, DebtStatus("late").Valid())
}

func TestDebtInstallmentEffectiveStatus(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	paid := DebtInstallment{Status: DebtPaid, DueDate: asOf.AddDate(0, -1, 0)}
	assert.Equal(t, DebtPaid, paid.EffectiveStatus(asOf))

	overdue := DebtInstallment{Status: DebtActive, DueDate: asOf.AddDate(0, -1, 0)}
	assert.Equal(t, DebtOverdue, overdue.EffectiveStatus(asOf))

	upcoming := DebtInstallment{Status: DebtActive, DueDate: asOf.AddDate(0, 1, 0)}
	assert.Equal(t, DebtActive, upcoming.EffectiveStatus(asOf))
}
