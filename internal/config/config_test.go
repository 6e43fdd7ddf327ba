package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default("co1", "PT Example", "IDR")
	cfg.Currency.Rates = map[string]string{"USD": "15500"}
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	assert.Error(t, err)
}

func TestRateTable(t *testing.T) {
	cfg := Default("co1", "PT Example", "IDR")
	cfg.Currency.Rates = map[string]string{"USD": "15500", "SGD": "11450.25"}

	tbl, err := cfg.RateTable()
	require.NoError(t, err)
	assert.Equal(t, "IDR", tbl.Base())

	r, err := tbl.Rate("SGD")
	require.NoError(t, err)
	assert.Equal(t, "11450.25", r.String())
}

func TestRateTable_BadRateString(t *testing.T) {
	cfg := Default("co1", "PT Example", "IDR")
	cfg.Currency.Rates = map[string]string{"USD": "abc"}
	_, err := cfg.RateTable()
	assert.Error(t, err)
}

func TestDefault_SectionOrders(t *testing.T) {
	cfg := Default("co1", "PT Example", "IDR")
	assert.NotEmpty(t, cfg.Statements.PositionSections)
	assert.NotEmpty(t, cfg.Statements.IncomeSections)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
}
