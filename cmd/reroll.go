package cmd

import (
	"github.com/spf13/cobra"
)

var rerollCmd = &cobra.Command{
	Use:     "reroll",
	Aliases: []string{"next"},
	Short:   "Give me a tip: pick a new random tip for this session",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return showTip(cmd, true, GetConfig().DefaultFormat)
	},
}

func init() {
	rootCmd.AddCommand(rerollCmd)
}
