package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/counted-dev/counted/internal/model"
)

// Canonical column names for chart-of-accounts.csv. On read, the header
// row is the authoritative name-to-column mapping: columns may appear in
// any order and unknown columns are ignored.
const (
	colCompanyID  = "company_id"
	colParentCode = "parent_code"
	colCode       = "code"
	colName       = "name"
	colType       = "type"
	colCategory   = "category"
	colBalanceDr  = "balance_dr"
	colBalanceCr  = "balance_cr"
	colIsMain     = "is_main_account"
)

var writeHeader = []string{
	colCompanyID, colParentCode, colCode, colName, colType,
	colCategory, colBalanceDr, colBalanceCr, colIsMain,
}

// ReadAccounts reads a chart-of-accounts CSV. Rows without a code are
// skipped rather than rejected, matching dashboard import behavior.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // header decides the shape

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols[colCode]; !ok {
		return nil, fmt.Errorf("accounts CSV has no %q column", colCode)
	}

	field := func(rec []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var accounts []model.Account
	for n, rec := range records[1:] {
		if field(rec, colCode) == "" {
			continue
		}
		acct, err := unmarshalAccount(rec, field)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

func unmarshalAccount(rec []string, field func([]string, string) string) (model.Account, error) {
	balanceDr, err := parseAmount(field(rec, colBalanceDr))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing %s: %w", colBalanceDr, err)
	}
	balanceCr, err := parseAmount(field(rec, colBalanceCr))
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing %s: %w", colBalanceCr, err)
	}

	isMain := false
	if v := field(rec, colIsMain); v != "" {
		isMain, err = strconv.ParseBool(v)
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing %s %q: %w", colIsMain, v, err)
		}
	}

	return model.Account{
		CompanyID:     field(rec, colCompanyID),
		ParentCode:    field(rec, colParentCode),
		Code:          field(rec, colCode),
		Name:          field(rec, colName),
		Type:          model.AccountType(field(rec, colType)),
		Category:      field(rec, colCategory),
		BalanceDr:     balanceDr,
		BalanceCr:     balanceCr,
		IsMainAccount: isMain,
	}, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// WriteAccounts writes a chart-of-accounts CSV in canonical column order.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(writeHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		if err := cw.Write(marshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func marshalAccount(a model.Account) []string {
	row := make([]string, len(writeHeader))
	row[0] = a.CompanyID
	row[1] = a.ParentCode
	row[2] = a.Code
	row[3] = a.Name
	row[4] = string(a.Type)
	row[5] = a.Category
	if !a.BalanceDr.IsZero() {
		row[6] = a.BalanceDr.String()
	}
	if !a.BalanceCr.IsZero() {
		row[7] = a.BalanceCr.String()
	}
	if a.IsMainAccount {
		row[8] = "true"
	}
	return row
}
