package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/session"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every tip, marking the one this session is on",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current := -1
		s, err := store.Load(cmd.Context())
		switch {
		case err == nil:
			if i, ok := s.Selection(); ok && !s.Expired(now(), cfg.TTL()) {
				current = i
			}
		case !errors.Is(err, session.ErrNoSession):
			return err
		}

		out := cmd.OutOrStdout()
		for i, title := range tipCatalog.Titles() {
			marker := " "
			if i == current {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %2d. %s\n", marker, i+1, title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
