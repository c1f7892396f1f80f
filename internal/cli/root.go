// Package cli provides the command-line interface for taskflow.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
)

// Command group IDs.
const (
	groupSetup = "setup"
	groupTask  = "task"
	groupView  = "view"
)

// DataDirFlag is the persistent flag selecting the data directory.
// main reads it before the container is built.
const DataDirFlag = "data-dir"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for taskflow.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:   "taskflow",
		Short: "To-do list and kanban board in the terminal",
		Long: `taskflow keeps a personal to-do list that doubles as a kanban board.

Tasks carry a priority, an optional due date, a category, tags, notes and
a checklist of subtasks. Every task also sits in one of four board columns
(To Do, In Progress, Review, Done), independent of its completion flag.

Run without arguments to open the interactive board.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchTUIFunc(cmd, c)
		},
	}

	root.PersistentFlags().StringVar(&dataDir, DataDirFlag, "", "Data directory (default: $TASKFLOW_DIR or $XDG_DATA_HOME/taskflow)")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupView, Title: "Views:"},
	)

	setup := []*cobra.Command{
		newInitCommand(c),
		newConfigCommand(c),
		newLogsCommand(c),
		newHistoryCommand(c),
	}
	tasks := []*cobra.Command{
		newAddCommand(c),
		newEditCommand(c),
		newRmCommand(c),
		newToggleCommand(c),
		newSubtaskCommand(c),
		newClearCommand(c),
		newStatusCommand(c),
		newImportCommand(c),
		newExportCommand(c),
	}
	views := []*cobra.Command{
		newListCommand(c),
		newShowCommand(c),
		newStatsCommand(c),
		newBoardCommand(c),
		newTagsCommand(c),
		newTUICommand(c),
	}

	for _, cmd := range setup {
		cmd.GroupID = groupSetup
		root.AddCommand(cmd)
	}
	for _, cmd := range tasks {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}
	for _, cmd := range views {
		cmd.GroupID = groupView
		root.AddCommand(cmd)
	}

	return root
}
