package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// newImportCommand creates the import command.
func newImportCommand(c *app.Container) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Add tasks from a YAML file",
		Long: `Add tasks from a YAML file. Use "-" to read standard input.

The file is either a list of tasks or a mapping with a "tasks" list.
Ids and creation times in the file are ignored. Entries with blank
text are skipped. The first task of the file ends up on top.

File format:
  tasks:
    - text: Write report
      priority: high
      dueDate: 2025-02-01
      category: Work
      tags: [writing]
      subtasks:
        - text: Outline
          completed: true
    - text: Water plants
      status: in-progress

A file written by "taskflow export --format yaml" can be imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			uc := c.ImportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
				Content: content,
				DryRun:  dryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Imported"
			if dryRun {
				verb = "Would import"
			}
			for _, t := range out.Tasks {
				_, _ = fmt.Fprintf(w, "  %s %s\n", domain.ShortID(t.ID), t.Text)
			}
			_, _ = fmt.Fprintf(w, "%s %d task(s)", verb, len(out.Tasks))
			if out.Skipped > 0 {
				_, _ = fmt.Fprintf(w, ", skipped %d blank", out.Skipped)
			}
			_, _ = fmt.Fprintln(w)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the file without saving")

	return cmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Format   string
		Output   string
		Filter   string
		Category string
		Search   string
		Sort     string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write tasks as JSON or YAML",
		Long: `Write tasks as JSON or YAML.

Without query flags the whole collection is written in store order.
With --filter, --category, --search or --sort the filtered and sorted
list is written instead.

Examples:
  taskflow export > backup.json
  taskflow export --format yaml -o tasks.yaml
  taskflow export --filter overdue --sort priority`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := usecase.ExportTasksInput{Format: opts.Format}

			flags := cmd.Flags()
			if flags.Changed("filter") || flags.Changed("category") || flags.Changed("search") || flags.Changed("sort") {
				filter, err := domain.ParseStatusFilter(opts.Filter)
				if err != nil {
					return err
				}
				sort, err := domain.ParseSortMode(opts.Sort)
				if err != nil {
					return err
				}
				input.Query = &domain.Query{
					Filter:   filter,
					Category: opts.Category,
					Search:   opts.Search,
					Sort:     sort,
				}
			}

			uc := c.ExportTasksUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}

			if opts.Output == "" || opts.Output == "-" {
				_, err = cmd.OutOrStdout().Write(out.Data)
				return err
			}
			if err := os.WriteFile(opts.Output, out.Data, 0o600); err != nil {
				return fmt.Errorf("write file: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d task(s) to %s\n", out.Count, opts.Output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Format, "format", usecase.ExportFormatJSON, "Output format: json, yaml")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.Filter, "filter", "f", "", "Status filter: all, active, completed, overdue")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category filter")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Case-insensitive search in text and tags")
	cmd.Flags().StringVarP(&opts.Sort, "sort", "s", "", "Sort mode: date, priority, category")

	return cmd
}
