package model

import "github.com/shopspring/decimal"

// Canonical statement section keys. The set is open: aggregation accepts
// any key and reports unknown ones under their raw key.
const (
	SectionCurrentAssets         = "Current_Assets"
	SectionNonCurrentAssets      = "Non_current_Assets"
	SectionCurrentLiabilities    = "Current_Liabilities"
	SectionNonCurrentLiabilities = "Non_current_Liabilities"
	SectionEquity                = "Equity"
	SectionRevenue               = "Revenue"
	SectionCostOfSales           = "Cost_of_Sales"
	SectionOperatingExpenses     = "Operating_Expenses"
	SectionOtherIncome           = "Other_Income"
)

// StatementLineItem is one line of a financial statement for one period.
// Key identifies the same conceptual line across reporting periods;
// Ending is the period-end amount in the report's base currency.
type StatementLineItem struct {
	Key     string
	Label   string
	Section string
	Ending  decimal.Decimal
	Pattern string // optional account-code pattern the line was built from
}
