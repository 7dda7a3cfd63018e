package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fakeyudi/tipsfortoday/internal/page"
	"github.com/fakeyudi/tipsfortoday/internal/session"
)

var (
	showFormat string
	showReroll bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current tip of this session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := showFormat
		if format == "" {
			format = GetConfig().DefaultFormat
		}
		return showTip(cmd, showReroll, format)
	},
}

// showTip runs one render pass for the current session and prints the page.
func showTip(cmd *cobra.Command, reroll bool, format string) error {
	ctx := cmd.Context()

	s, started, err := session.Resume(ctx, store, cfg.TTL(), now())
	if err != nil {
		return err
	}
	logSession(ctx, s, started)

	p := page.Build(tipCatalog, tipPicker, s, reroll)
	if reroll {
		logger.InfoContext(ctx, "tip rerolled", "session", s.ID, "index", p.Index, "rerolls", s.Rerolls)
	} else {
		logger.DebugContext(ctx, "tip selected", "session", s.ID, "index", p.Index)
	}

	if err := store.Save(ctx, s); err != nil {
		return err
	}

	data, err := page.RendererFor(format).Render(p)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func init() {
	showCmd.Flags().StringVar(&showFormat, "format", "", "output format: plain, markdown or json (overrides config)")
	showCmd.Flags().BoolVar(&showReroll, "reroll", false, "pick a new tip before printing")
	rootCmd.AddCommand(showCmd)
}
