package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/counted-dev/counted/internal/accounts"
	"github.com/counted-dev/counted/internal/config"
)

func newInitCommand() *cobra.Command {
	var companyID string
	var companyName string
	var baseCurrency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new counted data root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, companyID, companyName, baseCurrency); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized counted data root in %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&companyID, "company", "", "company identifier (required)")
	_ = cmd.MarkFlagRequired("company")
	cmd.Flags().StringVar(&companyName, "name", "", "company display name")
	cmd.Flags().StringVar(&baseCurrency, "base-currency", "IDR", "reporting base currency")

	return cmd
}

func runInit(dir, companyID, companyName, baseCurrency string) error {
	for _, sub := range []string{"accounts", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("creating %s dir: %w", sub, err)
		}
	}

	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.FileName, dir)
	}
	if err := config.Save(cfgPath, config.Default(companyID, companyName, baseCurrency)); err != nil {
		return err
	}

	svc := accounts.NewService(companyID, accounts.DefaultChart(companyID))
	if err := svc.Save(dir); err != nil {
		return err
	}
	return nil
}
