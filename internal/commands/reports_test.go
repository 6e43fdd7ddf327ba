package commands

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/counted-dev/counted/internal/accounts"
	"github.com/counted-dev/counted/internal/auditlog"
	"github.com/counted-dev/counted/internal/journal"
	"github.com/counted-dev/counted/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func day(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// initRoot scaffolds a data root and returns its path with the accounts
// service loaded back from disk.
func initRoot(t *testing.T) (string, *accounts.Service) {
	t.Helper()
	dir := t.TempDir()
	_, err := runCommand(t, "init", dir, "--company", "co1", "--name", "PT Example")
	require.NoError(t, err)

	svc, err := accounts.Load(dir, "co1")
	require.NoError(t, err)
	return dir, svc
}

func postLine(t *testing.T, dir string, svc *accounts.Service, line model.JournalLine) {
	t.Helper()
	jrnl := journal.NewService(dir, svc)
	require.NoError(t, jrnl.Append(line.Date.Year(), int(line.Date.Month()), []model.JournalLine{line}))
}

func TestLedgerCommand(t *testing.T) {
	dir, svc := initRoot(t)

	postLine(t, dir, svc, model.JournalLine{
		Date:        day(2025, 1, 10),
		Reference:   "TRX-2025-001",
		Description: "Client payment",
		AccountCode: "101.02",
		Debit:       dec("50000"),
	})
	postLine(t, dir, svc, model.JournalLine{
		Date:        day(2025, 1, 12),
		Reference:   "TRX-2025-002",
		Description: "Rent",
		AccountCode: "101.02",
		Credit:      dec("30000"),
	})

	out, err := runCommand(t, "ledger", "101.02", "--root", dir,
		"--year", "2025", "--month", "1", "--opening", "100000")
	require.NoError(t, err)

	assert.Contains(t, out, "Opening Balance")
	assert.Contains(t, out, "TRX-2025-001")
	assert.Contains(t, out, "TRX-2025-002")
	assert.Contains(t, out, "Closing balance")
	assert.NotContains(t, out, "PARTIAL")

	entries, err := auditlog.Read(dir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, "generated", entries[0].Action)
}

func TestLedgerCommand_UnknownAccount(t *testing.T) {
	dir, _ := initRoot(t)
	_, err := runCommand(t, "ledger", "999", "--root", dir)
	assert.Error(t, err)
}

func TestStatementCommand_Position(t *testing.T) {
	dir, svc := initRoot(t)

	// Give two accounts balances and persist the chart.
	cash, _ := svc.Get("101.01")
	cash.BalanceDr = dec("750000")
	require.NoError(t, svc.Upsert(cash))
	capital, _ := svc.Get("301")
	capital.BalanceCr = dec("750000")
	require.NoError(t, svc.Upsert(capital))
	require.NoError(t, svc.Save(dir))

	out, err := runCommand(t, "statement", "--root", dir, "--kind", "position")
	require.NoError(t, err)

	assert.Contains(t, out, "Statement of Financial Position")
	assert.Contains(t, out, "Current Assets")
	assert.Contains(t, out, "Cash on Hand")
	assert.Contains(t, out, "Share Capital")
	assert.Contains(t, out, "TOTAL")
}

func TestStatementCommand_UnknownKind(t *testing.T) {
	dir, _ := initRoot(t)
	_, err := runCommand(t, "statement", "--root", dir, "--kind", "cashflow")
	assert.Error(t, err)
}

func TestTreeCommand(t *testing.T) {
	dir, _ := initRoot(t)

	out, err := runCommand(t, "tree", "--root", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1  Assets")
	assert.Contains(t, out, "101.01  Cash on Hand")

	filtered, err := runCommand(t, "tree", "--root", dir, "--search", "101.01")
	require.NoError(t, err)
	assert.Contains(t, filtered, "Cash on Hand")
	assert.Contains(t, filtered, "Assets", "ancestors stay visible")
	assert.NotContains(t, filtered, "Share Capital")
}
