package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newLogsCommand creates the logs command.
func newLogsCommand(c *app.Container) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs [id]",
		Short: "Show the activity log",
		Long: `Show the global activity log, or the log of one task.

Examples:
  taskflow logs
  taskflow logs -n 20
  taskflow logs 3f2a`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.ShowLogsInput{Lines: lines}
			if len(args) == 1 {
				input.TaskRef = args[0]
			}
			uc := c.ShowLogsUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Content)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "Number of lines to show from the end (0 = all)")

	return cmd
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved snapshots (git store only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowHistoryUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowHistoryInput{Limit: limit})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()
			_, _ = fmt.Fprintln(tw, "COMMIT\tWHEN\tTASKS\tMESSAGE")
			for _, s := range out.Snapshots {
				hash := s.Hash
				if len(hash) > 7 {
					hash = hash[:7]
				}
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", hash, s.When.Format("2006-01-02 15:04:05"), s.Tasks, s.Message)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of snapshots (0 = all)")

	return cmd
}
