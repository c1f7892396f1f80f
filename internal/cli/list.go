package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Filter   string
		Category string
		Search   string
		Sort     string
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `Display the filtered and sorted task list followed by statistics.

Filters run in the order status, category, search. Statistics always
cover the whole collection. Defaults come from the [view] config section.

Filters: all, active, completed, overdue
Sorts:   date (newest first), priority (urgent first), category (A-Z)

Examples:
  # Open tasks, most urgent first
  taskflow list --filter active --sort priority

  # Overdue work tasks
  taskflow list -f overdue -c Work

  # Search text and tags
  taskflow list -q report

  # Machine-readable output
  taskflow list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := c.AppConfig.DefaultQuery()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("filter") {
				if query.Filter, err = domain.ParseStatusFilter(opts.Filter); err != nil {
					return err
				}
			}
			if flags.Changed("sort") {
				if query.Sort, err = domain.ParseSortMode(opts.Sort); err != nil {
					return err
				}
			}
			if flags.Changed("category") {
				query.Category = opts.Category
			}
			query.Search = opts.Search

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Query: query})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.JSON {
				return writeJSON(w, struct {
					Tasks []domain.Task `json:"tasks"`
					Stats domain.Stats  `json:"stats"`
				}{Tasks: nonNilTasks(out.Tasks), Stats: out.Stats})
			}
			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks found")
			} else {
				printTaskList(w, out.Tasks, c.Clock.Now())
			}
			_, _ = fmt.Fprintln(w)
			printStats(w, out.Stats)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Status filter: all, active, completed, overdue")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", `Category filter ("All" for every category)`)
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Case-insensitive search in text and tags")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort mode: date, priority, category")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// newStatsCommand creates the stats command.
func newStatsCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show collection statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowStatsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowStatsInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(w, out)
			}
			printStats(w, out.Stats)
			_, _ = fmt.Fprintf(w, "Board:      %d to do, %d in progress, %d in review, %d done\n",
				out.Board.Todo, out.Board.InProgress, out.Board.Review, out.Board.Done)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

// newBoardCommand creates the board command.
func newBoardCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Category string
		Search   string
		JSON     bool
	}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the kanban board",
		Long: `Show tasks grouped into the To Do, In Progress, Review and Done columns.

Cards keep list order inside each column.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ShowBoardUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowBoardInput{
				Category: opts.Category,
				Search:   opts.Search,
			})
			if err != nil {
				return err
			}
			if opts.JSON {
				return writeJSON(cmd.OutOrStdout(), out.Board)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderBoard(out.Board))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category filter")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Case-insensitive search in text and tags")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// newTagsCommand creates the tags command.
func newTagsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tags in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTagsUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTagsInput{})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if len(out.Tags) == 0 {
				_, _ = fmt.Fprintln(w, "No tags")
				return nil
			}
			for _, tc := range out.Tags {
				_, _ = fmt.Fprintf(w, "#%s (%d)\n", tc.Tag, tc.Count)
			}
			return nil
		},
	}
}

func nonNilTasks(tasks []domain.Task) []domain.Task {
	if tasks == nil {
		return []domain.Task{}
	}
	return tasks
}
