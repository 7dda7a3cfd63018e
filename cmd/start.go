package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/session"
)

var startForce bool

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Begin a new browsing session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		s, err := session.Start(ctx, store, cfg.TTL(), now(), startForce)
		if err != nil {
			if errors.Is(err, session.ErrSessionActive) {
				return fmt.Errorf("session already in progress (started at %s); use --force to replace it", s.StartTime.Format(time.RFC3339))
			}
			return err
		}
		logger.InfoContext(ctx, "session started", "session", s.ID, "forced", startForce)

		fmt.Fprintln(cmd.OutOrStdout(), "Session started.")
		return nil
	},
}

func init() {
	startCmd.Flags().BoolVar(&startForce, "force", false, "replace an active session")
	rootCmd.AddCommand(startCmd)
}
