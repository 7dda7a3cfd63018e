package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/session"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "End the current browsing session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := store.Load(ctx)
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return fmt.Errorf("no active session")
			}
			return err
		}

		expired := s.Expired(now(), cfg.TTL())
		if err := store.Delete(ctx); err != nil {
			return err
		}
		if expired {
			logger.InfoContext(ctx, "expired session removed", "session", s.ID)
			return fmt.Errorf("no active session (last session expired)")
		}
		logger.InfoContext(ctx, "session stopped", "session", s.ID, "rerolls", s.Rerolls)

		fmt.Fprintf(cmd.OutOrStdout(), "Session stopped after %d reroll(s).\n", s.Rerolls)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stopCmd)
}
