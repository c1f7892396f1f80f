package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running taskflow without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive list and board for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}
}

// launchTUI runs the TUI until the user quits.
func launchTUI(cmd *cobra.Command, c *app.Container) error {
	return tui.Run(cmd.Context(), c)
}
