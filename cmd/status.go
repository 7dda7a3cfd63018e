package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/session"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current browsing session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		s, err := store.Load(cmd.Context())
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				fmt.Fprintln(out, "no active session")
				return nil
			}
			return err
		}
		if s.Expired(now(), cfg.TTL()) {
			fmt.Fprintln(out, "no active session (last session expired)")
			return nil
		}

		fmt.Fprintf(out, "Session: %s\n", s.ID)
		fmt.Fprintf(out, "Started: %s\n", s.StartTime.Format(time.RFC3339))
		fmt.Fprintf(out, "Age: %s\n", now().Sub(s.StartTime).Round(time.Second).String())
		if i, ok := s.Selection(); ok && i >= 0 && i < tipCatalog.Size() {
			fmt.Fprintf(out, "Tip: %d/%d %s\n", i+1, tipCatalog.Size(), tipCatalog.Get(i).Title)
		} else {
			fmt.Fprintln(out, "Tip: (not selected yet)")
		}
		fmt.Fprintf(out, "Rerolls: %d\n", s.Rerolls)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
