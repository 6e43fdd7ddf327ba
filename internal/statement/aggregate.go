// Package statement groups statement line items into ordered sections and
// merges two reporting periods into comparable rows with subtotals and a
// grand total.
package statement

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/counted-dev/counted/internal/model"
)

// Row is one merged statement line. A nil period amount means the line
// did not exist in that period (new or discontinued line item).
type Row struct {
	Key      string
	Label    string
	Current  *decimal.Decimal
	Previous *decimal.Decimal
}

// PeriodTotal holds one amount per compared period.
type PeriodTotal struct {
	Current  decimal.Decimal
	Previous decimal.Decimal
}

// Section is one statement grouping with its merged rows and subtotal.
type Section struct {
	Key      string
	Label    string
	Rows     []Row
	Subtotal PeriodTotal
}

// Statement is the aggregated, presentation-ready report.
type Statement struct {
	Sections   []Section
	GrandTotal PeriodTotal
}

type options struct {
	sectionTotals map[string]PeriodTotal
}

// Option adjusts aggregation behavior.
type Option func(*options)

// WithSectionTotals supplies precomputed subtotals for specific sections.
// Supplied totals take precedence over sums computed from the rows, so
// callers can apply business adjustments.
func WithSectionTotals(totals map[string]PeriodTotal) Option {
	return func(o *options) {
		o.sectionTotals = totals
	}
}

// Aggregate groups current and previous period items by section and
// merges them by key within each section. Sections come out in the
// caller's canonical order; sections found in the data but absent from
// sectionOrder are appended afterwards in first-seen order, labeled by
// their raw key. No item is ever dropped: every key present in either
// period appears in the merged rows.
func Aggregate(current, previous []model.StatementLineItem, sectionOrder []string, opts ...Option) Statement {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	curBySection := groupBySection(current)
	prevBySection := groupBySection(previous)

	var stmt Statement
	for _, key := range sectionKeys(sectionOrder, current, previous) {
		section := buildSection(key, curBySection[key], prevBySection[key])
		if pre, ok := o.sectionTotals[key]; ok {
			section.Subtotal = pre
		}
		stmt.Sections = append(stmt.Sections, section)
		stmt.GrandTotal.Current = stmt.GrandTotal.Current.Add(section.Subtotal.Current)
		stmt.GrandTotal.Previous = stmt.GrandTotal.Previous.Add(section.Subtotal.Previous)
	}
	return stmt
}

func groupBySection(items []model.StatementLineItem) map[string][]model.StatementLineItem {
	grouped := make(map[string][]model.StatementLineItem)
	for _, it := range items {
		grouped[it.Section] = append(grouped[it.Section], it)
	}
	return grouped
}

// sectionKeys returns the canonical order followed by any unknown
// sections in first-seen order (current items first, then previous).
func sectionKeys(order []string, current, previous []model.StatementLineItem) []string {
	keys := make([]string, 0, len(order))
	seen := make(map[string]bool, len(order))
	for _, k := range order {
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	for _, it := range append(append([]model.StatementLineItem{}, current...), previous...) {
		if seen[it.Section] {
			continue
		}
		seen[it.Section] = true
		keys = append(keys, it.Section)
	}
	// Canonical sections stay even when empty; the mandated layout
	// prints them with zero subtotals.
	return keys
}

// buildSection merges the two periods' items by key via a map, keeping
// current-period order first and appending previous-only rows after.
func buildSection(key string, current, previous []model.StatementLineItem) Section {
	section := Section{Key: key, Label: SectionLabel(key)}

	prevByKey := make(map[string]model.StatementLineItem, len(previous))
	for _, it := range previous {
		prevByKey[it.Key] = it
	}

	merged := make(map[string]bool, len(current))
	for _, it := range current {
		row := Row{Key: it.Key, Label: it.Label, Current: amount(it.Ending)}
		if prev, ok := prevByKey[it.Key]; ok {
			row.Previous = amount(prev.Ending)
		}
		merged[it.Key] = true
		section.Rows = append(section.Rows, row)
		section.Subtotal.Current = section.Subtotal.Current.Add(it.Ending)
	}
	for _, it := range previous {
		section.Subtotal.Previous = section.Subtotal.Previous.Add(it.Ending)
		if merged[it.Key] {
			continue
		}
		section.Rows = append(section.Rows, Row{
			Key:      it.Key,
			Label:    it.Label,
			Previous: amount(it.Ending),
		})
	}
	return section
}

// SectionLabel derives a display label from a section key, so unknown
// sections still render under their raw name.
func SectionLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func amount(d decimal.Decimal) *decimal.Decimal {
	v := d
	return &v
}
