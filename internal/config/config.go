// Package config reads and writes counted.yaml, the per-data-root
// configuration for company identity, currency rates, and statement
// layout.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/counted-dev/counted/internal/currency"
	"github.com/counted-dev/counted/internal/model"
)

// FileName is the config file name inside a data root.
const FileName = "counted.yaml"

// Config represents the top-level counted.yaml configuration.
type Config struct {
	Company    CompanyConfig    `yaml:"company"`
	Currency   CurrencyConfig   `yaml:"currency"`
	Statements StatementsConfig `yaml:"statements"`
	Fiscal     FiscalConfig     `yaml:"fiscal"`
}

// CompanyConfig identifies the company all data belongs to.
type CompanyConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// CurrencyConfig holds the base currency and the rate table. Rates are
// decimal strings to avoid float drift in the file.
type CurrencyConfig struct {
	Base  string            `yaml:"base"`
	Rates map[string]string `yaml:"rates,omitempty"`
}

// StatementsConfig fixes the canonical section order of each statement.
type StatementsConfig struct {
	PositionSections []string `yaml:"position_sections"`
	IncomeSections   []string `yaml:"income_sections"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// RateTable builds the currency.RateTable from the configured rates.
func (c *Config) RateTable() (*currency.RateTable, error) {
	rates := make(map[string]decimal.Decimal, len(c.Currency.Rates))
	for code, s := range c.Currency.Rates {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("parsing rate for %q: %w", code, err)
		}
		rates[code] = d
	}
	return currency.NewRateTable(c.Currency.Base, rates)
}

// Load reads a counted.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data root.
func Default(companyID, companyName, baseCurrency string) *Config {
	return &Config{
		Company: CompanyConfig{ID: companyID, Name: companyName},
		Currency: CurrencyConfig{
			Base: baseCurrency,
		},
		Statements: StatementsConfig{
			PositionSections: []string{
				model.SectionCurrentAssets,
				model.SectionNonCurrentAssets,
				model.SectionCurrentLiabilities,
				model.SectionNonCurrentLiabilities,
				model.SectionEquity,
			},
			IncomeSections: []string{
				model.SectionRevenue,
				model.SectionOtherIncome,
				model.SectionCostOfSales,
				model.SectionOperatingExpenses,
			},
		},
		Fiscal: FiscalConfig{YearStart: "01-01"},
	}
}
