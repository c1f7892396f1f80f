package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the task store",
		Long: `Initialize the taskflow data directory.

This command creates the data directory with:
- tasks.json (or repo.git when [tasks] store = "git"): empty task store
- logs/: directory for log files

Running init again is safe and keeps existing tasks.

Examples:
  # Initialize an empty store
  taskflow init

  # Initialize and add the sample board tasks
  taskflow init --demo`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.InitStoreUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitStoreInput{
				DataDir: c.Config.DataDir,
				Demo:    demo,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.AlreadyInitialized {
				_, _ = fmt.Fprintf(w, "taskflow already initialized in %s\n", out.DataDir)
			} else {
				_, _ = fmt.Fprintf(w, "Initialized taskflow in %s\n", out.DataDir)
			}
			if out.Seeded > 0 {
				_, _ = fmt.Fprintf(w, "Added %d demo task(s)\n", out.Seeded)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Seed the sample board tasks into an empty store")

	return cmd
}
