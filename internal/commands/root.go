// Package commands wires the counted CLI: scaffolding a data root and
// printing ledger, statement, and chart-of-accounts reports from it.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/counted-dev/counted/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "counted",
		Short:   "Ledger and financial statement reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("root", ".", "data root directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTreeCommand())
	rootCmd.AddCommand(newLedgerCommand())
	rootCmd.AddCommand(newStatementCommand())

	return rootCmd
}
