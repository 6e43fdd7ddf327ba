package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counted-dev/counted/internal/model"
)

func TestItemsFromAccounts(t *testing.T) {
	accounts := []model.Account{
		{Code: "1", Name: "Assets", Type: model.AccountTypeAsset, IsMainAccount: true, BalanceDr: dec("1")},
		{Code: "101", Name: "Cash", Type: model.AccountTypeAsset, Category: model.SectionCurrentAssets, BalanceDr: dec("500"), BalanceCr: dec("100")},
		{Code: "201", Name: "Payables", Type: model.AccountTypeLiability, Category: model.SectionCurrentLiabilities, BalanceCr: dec("300")},
		{Code: "103", Name: "Dormant", Type: model.AccountTypeAsset},
	}

	items := ItemsFromAccounts(accounts)
	require.Len(t, items, 2, "main and dormant accounts are excluded")

	assert.Equal(t, "101", items[0].Key)
	assert.Equal(t, model.SectionCurrentAssets, items[0].Section)
	assert.True(t, items[0].Ending.Equal(dec("400")), "asset is debit-natured")

	assert.Equal(t, "201", items[1].Key)
	assert.True(t, items[1].Ending.Equal(dec("300")), "liability is credit-natured")
}

func TestItemsFromAccounts_CategoryFallsBackToType(t *testing.T) {
	accounts := []model.Account{
		{Code: "401", Name: "Sales", Type: model.AccountTypeIncome, BalanceCr: dec("900")},
		{Code: "501", Name: "Rent", Type: model.AccountTypeExpense, BalanceDr: dec("200")},
	}

	items := ItemsFromAccounts(accounts)
	require.Len(t, items, 2)
	assert.Equal(t, model.SectionRevenue, items[0].Section)
	assert.Equal(t, model.SectionOperatingExpenses, items[1].Section)
}

func TestItemsFeedAggregateEndToEnd(t *testing.T) {
	accounts := []model.Account{
		{Code: "201", Name: "Payables", Type: model.AccountTypeLiability, Category: model.SectionCurrentLiabilities, BalanceCr: dec("300")},
		{Code: "301", Name: "Capital", Type: model.AccountTypeEquity, Category: model.SectionEquity, BalanceCr: dec("700")},
	}

	stmt := Aggregate(ItemsFromAccounts(accounts), nil, PositionSectionOrder)
	assert.True(t, stmt.GrandTotal.Current.Equal(dec("1000")))
}
