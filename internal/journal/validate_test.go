package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counted-dev/counted/internal/model"
)

// mockAccounts implements AccountChecker for testing.
type mockAccounts struct {
	codes map[string]bool
}

func (m *mockAccounts) Exists(code string) bool {
	return m.codes[code]
}

func newMockAccounts(codes ...string) *mockAccounts {
	m := &mockAccounts{codes: make(map[string]bool)}
	for _, c := range codes {
		m.codes[c] = true
	}
	return m
}

var defaultAccounts = newMockAccounts("1", "101", "101.02", "201", "502", "502.01", "502.02")

func TestValidate_CleanLines(t *testing.T) {
	errs := Validate([]model.JournalLine{sampleLine()}, defaultAccounts)
	assert.Empty(t, errs)
}

func TestValidate_BothSidesSet(t *testing.T) {
	line := sampleLine()
	line.Debit = dec("100")
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Equal(t, "TRX-2025-001", errs[0].Reference)
}

func TestValidate_NeitherSideSet(t *testing.T) {
	line := sampleLine()
	line.Credit = dec("0")
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
}

func TestValidate_UnknownAccount(t *testing.T) {
	line := sampleLine()
	line.AccountCode = "999"
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	require.NotEmpty(t, errs)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidate_InvalidCounterSide(t *testing.T) {
	line := sampleLine()
	line.Counter[0].Side = model.Side("debit")
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	require.NotEmpty(t, errs)
	assert.Equal(t, 3, errs[0].Invariant)
}

func TestValidate_UnbalancedCounterLegs(t *testing.T) {
	line := sampleLine()
	line.Counter = []model.CounterLeg{
		{Code: "502.01", Side: model.SideDr, Amount: dec("3000000")},
		{Code: "502.02", Side: model.SideDr, Amount: dec("1000000")},
	}
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, 4, errs[0].Invariant)
}

func TestValidate_NoCounterLegsIsFine(t *testing.T) {
	line := sampleLine()
	line.Counter = nil
	errs := Validate([]model.JournalLine{line}, defaultAccounts)
	assert.Empty(t, errs)
}

func TestValidate_OneBadLineDoesNotHideOthers(t *testing.T) {
	good := sampleLine()
	bad := sampleLine()
	bad.Reference = "TRX-2025-002"
	bad.AccountCode = "999"
	errs := Validate([]model.JournalLine{good, bad}, defaultAccounts)
	require.Len(t, errs, 1)
	assert.Equal(t, "TRX-2025-002", errs[0].Reference)
}
