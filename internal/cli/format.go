package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Board styles.
var (
	boardColumnStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#3F3F46")).
				Padding(0, 1).
				Width(30)
	boardTitleStyle = lipgloss.NewStyle().Bold(true)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#71717A"))
	priorityStyles  = map[domain.Priority]lipgloss.Style{
		domain.PriorityUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		domain.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F97316")),
		domain.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#EAB308")),
		domain.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
	}
)

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrTaskNotFound)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// dueLabel formats the due date, marking open overdue tasks.
func dueLabel(t domain.Task, now time.Time) string {
	if t.DueDate == "" {
		return "-"
	}
	if !t.Completed && domain.IsOverdue(t.DueDate, now) {
		return t.DueDate + " (overdue)"
	}
	return t.DueDate
}

// printTaskList prints tasks in TSV format.
func printTaskList(w io.Writer, tasks []domain.Task, now time.Time) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	// Header
	_, _ = fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tSTATUS\tDUE\tCATEGORY\tTEXT")

	// Rows
	for _, t := range tasks {
		text := t.Text
		if done, total := t.SubtaskProgress(); total > 0 {
			text = fmt.Sprintf("%s (%d/%d)", text, done, total)
		}
		if len(t.Tags) > 0 {
			text += " #" + strings.Join(t.Tags, " #")
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			domain.ShortID(t.ID),
			checkbox(t.Completed),
			t.Priority,
			t.Status,
			dueLabel(t, now),
			t.Category,
			text,
		)
	}
}

// printStats prints the statistics summary.
func printStats(w io.Writer, s domain.Stats) {
	_, _ = fmt.Fprintf(w, "Total:      %d\n", s.Total)
	_, _ = fmt.Fprintf(w, "Active:     %d\n", s.Active)
	_, _ = fmt.Fprintf(w, "Completed:  %d\n", s.Completed)
	_, _ = fmt.Fprintf(w, "Overdue:    %d\n", s.Overdue)
	_, _ = fmt.Fprintf(w, "Progress:   %d%%\n", s.CompletionRate)
}

// printTaskDetails prints one task.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput) {
	t := out.Task

	// Header
	_, _ = fmt.Fprintf(w, "# %s %s\n\n", checkbox(t.Completed), t.Text)

	// Notes
	if t.Notes != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", t.Notes)
	}

	// Fields
	_, _ = fmt.Fprintf(w, "ID:       %s\n", t.ID)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", t.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", t.Priority)
	_, _ = fmt.Fprintf(w, "Category: %s\n", t.Category)
	if t.DueDate != "" {
		due := t.DueDate
		if out.Overdue {
			due += " (overdue)"
		}
		_, _ = fmt.Fprintf(w, "Due:      %s\n", due)
	}
	if t.Assignee != "" {
		_, _ = fmt.Fprintf(w, "Assignee: %s\n", t.Assignee)
	}
	if t.Recurring != domain.RecurrenceNone {
		_, _ = fmt.Fprintf(w, "Repeats:  %s\n", t.Recurring)
	}
	if len(t.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags:     [%s]\n", strings.Join(t.Tags, ", "))
	}
	_, _ = fmt.Fprintf(w, "Created:  %s\n", t.CreatedAt.Format(time.RFC3339))

	// Subtasks
	if out.SubtasksTotal > 0 {
		_, _ = fmt.Fprintf(w, "\nSubtasks (%d/%d):\n", out.SubtasksDone, out.SubtasksTotal)
		for i, s := range t.Subtasks {
			_, _ = fmt.Fprintf(w, "  %d. %s %s\n", i+1, checkbox(s.Completed), s.Text)
		}
	}
}

// renderBoard renders the columns side by side.
func renderBoard(b domain.Board) string {
	columns := make([]string, 0, len(b.Columns))
	for _, col := range b.Columns {
		var sb strings.Builder
		sb.WriteString(boardTitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))))
		sb.WriteString("\n")
		if len(col.Tasks) == 0 {
			sb.WriteString(boardMutedStyle.Render("no tasks"))
		}
		for i, t := range col.Tasks {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(renderCard(t))
		}
		columns = append(columns, boardColumnStyle.Render(sb.String()))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	summary := boardMutedStyle.Render(fmt.Sprintf("%d tasks: %d to do, %d in progress, %d in review, %d done",
		b.Stats.Total, b.Stats.Todo, b.Stats.InProgress, b.Stats.Review, b.Stats.Done))
	return board + "\n" + summary
}

func renderCard(t domain.Task) string {
	var sb strings.Builder
	marker := "•"
	if t.Completed {
		marker = "✓"
	}
	sb.WriteString(fmt.Sprintf("%s %s\n", marker, t.Text))
	style, ok := priorityStyles[t.Priority]
	if !ok {
		style = boardMutedStyle
	}
	meta := []string{style.Render(string(t.Priority)), domain.ShortID(t.ID)}
	if t.Assignee != "" {
		meta = append(meta, t.Assignee)
	}
	if t.DueDate != "" {
		meta = append(meta, t.DueDate)
	}
	sb.WriteString("  " + strings.Join(meta, " · "))
	return sb.String()
}
