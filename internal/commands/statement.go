package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/counted-dev/counted/internal/accounts"
	"github.com/counted-dev/counted/internal/config"
	"github.com/counted-dev/counted/internal/currency"
	"github.com/counted-dev/counted/internal/model"
	"github.com/counted-dev/counted/internal/statement"
)

func newStatementCommand() *cobra.Command {
	var kind string
	var previousChart string

	cmd := &cobra.Command{
		Use:   "statement",
		Short: "Print the income statement or statement of financial position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := cmd.Flags().GetString("root")
			if err != nil {
				return err
			}
			return runStatement(cmd, root, kind, previousChart)
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "position", "statement kind: income or position")
	cmd.Flags().StringVar(&previousChart, "previous-chart", "", "chart-of-accounts CSV of the prior period, for comparison columns")

	return cmd
}

func runStatement(cmd *cobra.Command, root, kind, previousChart string) error {
	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return err
	}

	var order []string
	var types map[model.AccountType]bool
	switch kind {
	case "income":
		order = cfg.Statements.IncomeSections
		types = map[model.AccountType]bool{
			model.AccountTypeIncome:  true,
			model.AccountTypeExpense: true,
		}
	case "position":
		order = cfg.Statements.PositionSections
		types = map[model.AccountType]bool{
			model.AccountTypeAsset:     true,
			model.AccountTypeLiability: true,
			model.AccountTypeEquity:    true,
		}
	default:
		return fmt.Errorf("unknown statement kind %q (want income or position)", kind)
	}

	svc, err := accounts.Load(root, cfg.Company.ID)
	if err != nil {
		return err
	}
	current := statement.ItemsFromAccounts(filterByType(svc.All(), types))

	var previous []model.StatementLineItem
	if previousChart != "" {
		prevAccounts, err := loadChart(previousChart, cfg.Company.ID)
		if err != nil {
			return fmt.Errorf("loading previous chart: %w", err)
		}
		previous = statement.ItemsFromAccounts(filterByType(prevAccounts, types))
	}

	stmt := statement.Aggregate(current, previous, order)
	printStatement(cmd, cfg, kind, stmt, previousChart != "")
	return nil
}

func filterByType(accts []model.Account, types map[model.AccountType]bool) []model.Account {
	var out []model.Account
	for _, a := range accts {
		if types[a.Type] {
			out = append(out, a)
		}
	}
	return out
}

func loadChart(path, companyID string) ([]model.Account, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	all, err := accounts.ReadAccounts(f)
	if err != nil {
		return nil, err
	}
	var scoped []model.Account
	for _, a := range all {
		if a.CompanyID == companyID {
			scoped = append(scoped, a)
		}
	}
	return scoped, nil
}

func printStatement(cmd *cobra.Command, cfg *config.Config, kind string, stmt statement.Statement, comparative bool) {
	out := cmd.OutOrStdout()
	title := "Statement of Financial Position"
	if kind == "income" {
		title = "Income Statement"
	}
	fmt.Fprintf(out, "%s — %s\n", title, cfg.Company.Name)

	base := cfg.Currency.Base
	for _, sec := range stmt.Sections {
		if len(sec.Rows) == 0 && sec.Subtotal.Current.IsZero() && sec.Subtotal.Previous.IsZero() {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", sec.Label)
		for _, row := range sec.Rows {
			if comparative {
				fmt.Fprintf(out, "  %-40s  %18s  %18s\n", row.Label, periodAmount(row.Current, base), periodAmount(row.Previous, base))
			} else {
				fmt.Fprintf(out, "  %-40s  %18s\n", row.Label, periodAmount(row.Current, base))
			}
		}
		if comparative {
			fmt.Fprintf(out, "  %-40s  %18s  %18s\n", "Subtotal", currency.Format(sec.Subtotal.Current, base), currency.Format(sec.Subtotal.Previous, base))
		} else {
			fmt.Fprintf(out, "  %-40s  %18s\n", "Subtotal", currency.Format(sec.Subtotal.Current, base))
		}
	}

	if comparative {
		fmt.Fprintf(out, "\n%-42s  %18s  %18s\n", "TOTAL", currency.Format(stmt.GrandTotal.Current, base), currency.Format(stmt.GrandTotal.Previous, base))
	} else {
		fmt.Fprintf(out, "\n%-42s  %18s\n", "TOTAL", currency.Format(stmt.GrandTotal.Current, base))
	}
}

// periodAmount renders an amount or a dash for a period the line did not
// exist in.
func periodAmount(d *decimal.Decimal, base string) string {
	if d == nil {
		return "—"
	}
	return currency.Format(*d, base)
}
