package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/counted-dev/counted/internal/accounts"
	"github.com/counted-dev/counted/internal/config"
)

func newTreeCommand() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the chart of accounts hierarchy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := cmd.Flags().GetString("root")
			if err != nil {
				return err
			}

			cfg, err := config.Load(filepath.Join(root, config.FileName))
			if err != nil {
				return err
			}
			svc, err := accounts.Load(root, cfg.Company.ID)
			if err != nil {
				return err
			}

			nodes, err := accounts.BuildTree(svc.All(), "")
			if err != nil {
				return err
			}

			var visible map[string]struct{}
			if search != "" {
				visible = accounts.Search(svc.All(), search)
			}
			printTree(cmd.OutOrStdout(), nodes, 0, visible)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter accounts, keeping ancestors of matches visible")
	return cmd
}

func printTree(w io.Writer, nodes []*accounts.Node, depth int, visible map[string]struct{}) {
	for _, n := range nodes {
		if visible != nil {
			if _, ok := visible[n.Account.Code]; !ok {
				continue
			}
		}
		fmt.Fprintf(w, "%*s%s  %s (%s)\n", depth*2, "", n.Account.Code, n.Account.Name, n.Account.Type)
		printTree(w, n.Children, depth+1, visible)
	}
}
