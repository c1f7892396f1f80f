package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// noChange reports a no-op mutation. Unknown ids are not errors.
func noChange(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No change: "+format+"\n", args...)
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Priority  string
		DueDate   string
		Category  string
		Notes     string
		Status    string
		Assignee  string
		Recurring string
		Tags      []string
		Subtasks  []string
	}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Long: `Add a task to the top of the list.

Priority defaults to [tasks] default_priority and category to
[tasks] default_category. Blank text adds nothing.

Examples:
  # Add a simple task
  taskflow add "Buy groceries"

  # Add a task with a deadline, priority and tags
  taskflow add "Quarterly report" -p high -d 2025-03-31 -c Work -t finance -t q1

  # Add a task with a checklist
  taskflow add "Plan trip" -s "Book flights" -s "Reserve hotel"

  # Add a card straight into the review column
  taskflow add "Review PR" --status review --assignee "Sam Chen"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.AddTaskInput{
				Text:     strings.Join(args, " "),
				DueDate:  opts.DueDate,
				Category: opts.Category,
				Notes:    opts.Notes,
				Assignee: opts.Assignee,
				Tags:     opts.Tags,
				Subtasks: opts.Subtasks,
			}
			var err error
			if opts.Priority != "" {
				if input.Priority, err = domain.ParsePriority(opts.Priority); err != nil {
					return err
				}
			}
			if opts.Status != "" {
				if input.Status, err = domain.ParseStatus(opts.Status); err != nil {
					return err
				}
			}
			if input.Recurring, err = domain.ParseRecurrence(opts.Recurring); err != nil {
				return err
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			if !out.Added {
				noChange(cmd, "task text is blank")
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", domain.ShortID(out.Task.ID), out.Task.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: urgent, high, medium, low")
	cmd.Flags().StringVarP(&opts.DueDate, "due", "d", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category")
	cmd.Flags().StringVarP(&opts.Notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Board column: todo, in-progress, review, done")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Card assignee")
	cmd.Flags().StringVar(&opts.Recurring, "recurring", "", "Recurrence label: daily, weekly, monthly")
	cmd.Flags().StringArrayVarP(&opts.Tags, "tag", "t", nil, "Tag (can specify multiple)")
	cmd.Flags().StringArrayVarP(&opts.Subtasks, "subtask", "s", nil, "Subtask (can specify multiple)")

	return cmd
}

// newEditCommand creates the edit command.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Text       string
		Priority   string
		DueDate    string
		Category   string
		Notes      string
		Status     string
		Assignee   string
		Recurring  string
		Tags       []string
		AddTags    []string
		RemoveTags []string
		Completed  bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id> [text]",
		Short: "Edit task fields",
		Long: `Edit fields of an existing task. Only the flags given are changed.

The id may be shortened to any unique prefix. Blank --text is ignored
so a task never loses its title. Use --due "" to clear a deadline.

Examples:
  # Change the text
  taskflow edit 3f2a "Renew passport"

  # Raise the priority and move the deadline
  taskflow edit 3f2a --priority urgent --due 2025-04-01

  # Replace all tags (comma-separated)
  taskflow edit 3f2a --tags home,errands

  # Add and remove tags
  taskflow edit 3f2a --add-tag urgent --rm-tag someday`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var patch domain.TaskPatch

			if len(args) == 2 {
				opts.Text = args[1]
				patch.Text = &opts.Text
			}
			if flags.Changed("text") {
				patch.Text = &opts.Text
			}
			if flags.Changed("priority") {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				patch.Priority = &p
			}
			if flags.Changed("due") {
				patch.DueDate = &opts.DueDate
			}
			if flags.Changed("category") {
				patch.Category = &opts.Category
			}
			if flags.Changed("notes") {
				patch.Notes = &opts.Notes
			}
			if flags.Changed("status") {
				s, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				patch.Status = &s
			}
			if flags.Changed("assignee") {
				patch.Assignee = &opts.Assignee
			}
			if flags.Changed("recurring") {
				r, err := domain.ParseRecurrence(opts.Recurring)
				if err != nil {
					return err
				}
				patch.Recurring = &r
			}
			if flags.Changed("tags") {
				patch.Tags = &opts.Tags
			}
			if flags.Changed("completed") {
				patch.Completed = &opts.Completed
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EditTaskInput{
				TaskRef:    args[0],
				Patch:      patch,
				AddTags:    opts.AddTags,
				RemoveTags: opts.RemoveTags,
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				noChange(cmd, "task %q not found", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", domain.ShortID(out.Task.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Text, "text", "", "New text")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: urgent, high, medium, low")
	cmd.Flags().StringVarP(&opts.DueDate, "due", "d", "", "Due date (YYYY-MM-DD, empty to clear)")
	cmd.Flags().StringVarP(&opts.Category, "category", "c", "", "Category")
	cmd.Flags().StringVarP(&opts.Notes, "notes", "n", "", "Notes")
	cmd.Flags().StringVar(&opts.Status, "status", "", "Board column: todo, in-progress, review, done")
	cmd.Flags().StringVar(&opts.Assignee, "assignee", "", "Card assignee")
	cmd.Flags().StringVar(&opts.Recurring, "recurring", "", "Recurrence label: daily, weekly, monthly, none")
	cmd.Flags().StringSliceVar(&opts.Tags, "tags", nil, "Replace all tags (comma-separated)")
	cmd.Flags().StringArrayVar(&opts.AddTags, "add-tag", nil, "Tag to add (can specify multiple)")
	cmd.Flags().StringArrayVar(&opts.RemoveTags, "rm-tag", nil, "Tag to remove (can specify multiple)")
	cmd.Flags().BoolVar(&opts.Completed, "completed", false, "Set the completion flag")

	return cmd
}

// newRmCommand creates the rm command.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>...",
		Short: "Delete tasks",
		Long: `Delete tasks. There is no undo.

Examples:
  # Delete one task by id prefix
  taskflow rm 3f2a

  # Delete several tasks
  taskflow rm 3f2a 91bc`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.RemoveTaskUseCase()
			for _, ref := range args {
				out, err := uc.Execute(cmd.Context(), usecase.RemoveTaskInput{TaskRef: ref})
				if err != nil {
					return err
				}
				if !out.Removed {
					noChange(cmd, "task %q not found", ref)
					continue
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed task %s: %s\n", domain.ShortID(out.Task.ID), out.Task.Text)
			}
			return nil
		},
	}
}

// newToggleCommand creates the toggle command.
func newToggleCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>...",
		Short: "Flip the completion flag of tasks",
		Long: `Mark open tasks completed and completed tasks open again.

The board column and the subtasks are left untouched.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ToggleTaskUseCase()
			for _, ref := range args {
				out, err := uc.Execute(cmd.Context(), usecase.ToggleTaskInput{TaskRef: ref})
				if err != nil {
					return err
				}
				if !out.Changed {
					noChange(cmd, "task %q not found", ref)
					continue
				}
				state := "active"
				if out.Task.Completed {
					state = "completed"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s marked %s\n", domain.ShortID(out.Task.ID), state)
			}
			return nil
		},
	}
}

// newSubtaskCommand creates the subtask command group.
func newSubtaskCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage subtasks",
		Long: `Manage the checklist of a task.

Subtasks never change the completion flag of their parent.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id> <text>",
			Short: "Append a subtask",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				uc := c.AddSubtaskUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.AddSubtaskInput{
					TaskRef: args[0],
					Text:    strings.Join(args[1:], " "),
				})
				if err != nil {
					return err
				}
				if !out.Added {
					noChange(cmd, "task %q not found or subtask text is blank", args[0])
					return nil
				}
				done, total := out.Task.SubtaskProgress()
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added subtask to %s (%d/%d done)\n", domain.ShortID(out.Task.ID), done, total)
				return nil
			},
		},
		&cobra.Command{
			Use:   "toggle <id> <subtask>",
			Short: "Flip a subtask",
			Long: `Flip the completion flag of a subtask.

The subtask is selected by its 1-based position, its id, or a unique id prefix.`,
			Args: cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				uc := c.ToggleSubtaskUseCase()
				out, err := uc.Execute(cmd.Context(), usecase.ToggleSubtaskInput{
					TaskRef:    args[0],
					SubtaskRef: args[1],
				})
				if err != nil {
					return err
				}
				if !out.Changed {
					noChange(cmd, "subtask %q of task %q not found", args[1], args[0])
					return nil
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", checkbox(out.Subtask.Completed), out.Subtask.Text)
				return nil
			},
		},
	)

	return cmd
}

// newClearCommand creates the clear command.
func newClearCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ClearCompletedUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ClearCompletedInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed task(s)\n", out.Removed)
			return nil
		},
	}
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id> <status>",
		Short: "Move a task to another board column",
		Long: `Move a task to another board column.

Any column may follow any other. "next" and "prev" move one column
right or left, wrapping around. The completion flag is not changed.

Examples:
  taskflow status 3f2a in-progress
  taskflow status 3f2a next`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTargetStatus(cmd, c, args[0], args[1])
			if err != nil {
				return err
			}
			if target == "" {
				noChange(cmd, "task %q not found", args[0])
				return nil
			}

			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{
				TaskRef: args[0],
				Status:  target,
			})
			if err != nil {
				return err
			}
			if !out.Changed {
				noChange(cmd, "task %q not found", args[0])
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s: %s -> %s\n",
				domain.ShortID(out.Task.ID), out.Previous.Display(), out.Task.Status.Display())
			return nil
		},
	}
}

// resolveTargetStatus parses the status argument. "next" and "prev" are
// relative to the current status; an empty result means the task is unknown.
func resolveTargetStatus(cmd *cobra.Command, c *app.Container, ref, arg string) (domain.Status, error) {
	rel := strings.ToLower(strings.TrimSpace(arg))
	if rel != "next" && rel != "prev" {
		return domain.ParseStatus(arg)
	}
	out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.ShowTaskInput{TaskRef: ref})
	if err != nil {
		if isNotFound(err) {
			return "", nil
		}
		return "", err
	}
	if rel == "next" {
		return out.Task.Status.Next(), nil
	}
	return out.Task.Status.Prev(), nil
}

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskRef: args[0]})
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out.Task)
			}
			printTaskDetails(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
