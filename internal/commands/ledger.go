package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/counted-dev/counted/internal/accounts"
	"github.com/counted-dev/counted/internal/auditlog"
	"github.com/counted-dev/counted/internal/config"
	"github.com/counted-dev/counted/internal/currency"
	"github.com/counted-dev/counted/internal/journal"
	"github.com/counted-dev/counted/internal/ledger"
	"github.com/counted-dev/counted/internal/model"
)

func newLedgerCommand() *cobra.Command {
	var year, month int
	var opening string

	cmd := &cobra.Command{
		Use:   "ledger <account-code>",
		Short: "Print an account's ledger with running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := cmd.Flags().GetString("root")
			if err != nil {
				return err
			}
			return runLedger(cmd, root, args[0], year, month, opening)
		},
	}

	now := time.Now()
	cmd.Flags().IntVar(&year, "year", now.Year(), "reporting year")
	cmd.Flags().IntVar(&month, "month", int(now.Month()), "reporting month")
	cmd.Flags().StringVar(&opening, "opening", "0", "opening balance carried into the period")

	return cmd
}

func runLedger(cmd *cobra.Command, root, code string, year, month int, opening string) error {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return err
	}
	rates, err := cfg.RateTable()
	if err != nil {
		return err
	}
	svc, err := accounts.Load(root, cfg.Company.ID)
	if err != nil {
		return err
	}
	account, ok := svc.Get(code)
	if !ok {
		return fmt.Errorf("unknown account %q", code)
	}

	openingBalance, err := decimal.NewFromString(opening)
	if err != nil {
		return fmt.Errorf("parsing opening balance %q: %w", opening, err)
	}

	lines, err := journal.NewService(root, svc).ReadMonth(year, month)
	if err != nil {
		return err
	}
	// The monthly journal mixes all accounts. Scope the ledger to this
	// account's lines, plus lines referencing codes missing from the
	// catalog so they surface as skip warnings instead of vanishing.
	var scoped []model.JournalLine
	for _, l := range lines {
		if l.AccountCode == code || !svc.Exists(l.AccountCode) {
			scoped = append(scoped, l)
		}
	}

	report, err := ledger.Build(account, scoped, openingBalance, rates)
	if err != nil {
		return err
	}

	if err := logLedgerRun(root, report); err != nil {
		return err
	}
	printLedger(cmd, cfg.Currency.Base, report)
	return nil
}

func printLedger(cmd *cobra.Command, base string, report ledger.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Ledger %s  %s\n", report.Account.Code, report.Account.Name)
	for _, row := range report.Rows {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.Format("2006-01-02")
		}
		fmt.Fprintf(out, "%-10s  %-14s  %-30s  %16s  %16s  %18s\n",
			date, row.Reference, row.Description,
			currency.Format(row.Dr, base),
			currency.Format(row.Cr, base),
			currency.Format(row.Balance, base))
	}
	fmt.Fprintf(out, "Closing balance: %s\n", currency.Format(report.Closing(), base))
	if report.Partial() {
		fmt.Fprintf(out, "PARTIAL REPORT: %d line(s) skipped, see logs/report-log.csv\n", len(report.Warnings))
	}
}

func logLedgerRun(root string, report ledger.Report) error {
	now := time.Now().UTC()
	entries := []auditlog.Entry{{
		Timestamp: now,
		Report:    "ledger",
		Action:    "generated",
		Detail:    fmt.Sprintf("account %s, %d rows", report.Account.Code, len(report.Rows)),
	}}
	for _, w := range report.Warnings {
		entries = append(entries, auditlog.Entry{
			Timestamp: now,
			Report:    "ledger",
			Action:    "line-skipped",
			Detail:    w.String(),
			Reference: w.Reference,
		})
	}
	return auditlog.Append(root, entries)
}
