// Package journal persists and validates journal lines: one posting row
// per line, with counter legs recording the other side of the entry.
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/counted-dev/counted/internal/model"
)

// Header is the CSV header for journal.csv.
const Header = "date,reference,description,account_code,debit,credit,currency,counter_accounts"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colDate    = 0
	colRef     = 1
	colDesc    = 2
	colAcct    = 3
	colDebit   = 4
	colCredit  = 5
	colCur     = 6
	colCounter = 7
)

// ReadLines reads all journal lines from a journal.csv reader.
func ReadLines(r io.Reader) ([]model.JournalLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var lines []model.JournalLine
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes lines to a journal.csv writer (including header).
func WriteLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendLines appends lines to an existing journal.csv writer (no header).
func AppendLines(w io.Writer, lines []model.JournalLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts a JournalLine to a CSV row.
func MarshalLine(line model.JournalLine) []string {
	row := make([]string, numFields)
	row[colDate] = line.Date.Format(dateFormat)
	row[colRef] = line.Reference
	row[colDesc] = line.Description
	row[colAcct] = line.AccountCode

	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.String()
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.String()
	}

	row[colCur] = line.Currency
	row[colCounter] = marshalCounter(line.Counter)
	return row
}

// UnmarshalLine converts a CSV row to a JournalLine.
func UnmarshalLine(record []string) (model.JournalLine, error) {
	if len(record) != numFields {
		return model.JournalLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return model.JournalLine{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	var debit, credit decimal.Decimal
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return model.JournalLine{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return model.JournalLine{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	counter, err := unmarshalCounter(record[colCounter])
	if err != nil {
		return model.JournalLine{}, err
	}

	return model.JournalLine{
		Date:        date,
		Reference:   record[colRef],
		Description: record[colDesc],
		AccountCode: record[colAcct],
		Debit:       debit,
		Credit:      credit,
		Currency:    record[colCur],
		Counter:     counter,
	}, nil
}

// Counter legs serialize as "code:side:amount" joined with semicolons,
// e.g. "201:dr:60000;202:dr:40000".
func marshalCounter(legs []model.CounterLeg) string {
	parts := make([]string, 0, len(legs))
	for _, leg := range legs {
		parts = append(parts, fmt.Sprintf("%s:%s:%s", leg.Code, leg.Side, leg.Amount.String()))
	}
	return strings.Join(parts, ";")
}

func unmarshalCounter(s string) ([]model.CounterLeg, error) {
	if s == "" {
		return nil, nil
	}
	var legs []model.CounterLeg
	for _, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("parsing counter leg %q: expected code:side:amount", part)
		}
		amount, err := decimal.NewFromString(fields[2])
		if err != nil {
			return nil, fmt.Errorf("parsing counter leg amount %q: %w", fields[2], err)
		}
		legs = append(legs, model.CounterLeg{
			Code:   fields[0],
			Side:   model.Side(fields[1]),
			Amount: amount,
		})
	}
	return legs, nil
}
