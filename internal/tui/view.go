package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/taskflow/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewQuery())
	b.WriteString("\n\n")

	if m.view == ViewBoard {
		b.WriteString(m.viewBoard())
	} else {
		b.WriteString(m.viewTaskList())
	}
	b.WriteString("\n")

	// Status line
	switch {
	case m.mode == ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	case m.mode == ModeAdd || m.mode == ModeSubtask:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("> "))
		b.WriteString(m.textInput.View())
	case m.mode == ModeSearch:
		b.WriteString("\n")
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
	case m.err != nil:
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
	case m.notice != "":
		b.WriteString("\n")
		b.WriteString(m.styles.Notice.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(b.String())
}

// viewHeader renders the title with the collection statistics.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render("Tasks")

	s := m.stats
	info := fmt.Sprintf("%d total  %d active  %d completed  %d overdue  %d%% done",
		s.Total, s.Active, s.Completed, s.Overdue, s.CompletionRate)
	rightText := m.styles.HeaderInfo.Render(info)

	headerWidth := m.width - 4 // padding
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}
	return m.styles.Header.Render(title + strings.Repeat(" ", spacing) + rightText)
}

// viewQuery renders the active projection settings.
func (m *Model) viewQuery() string {
	parts := []string{
		"view: " + m.view.String(),
		"filter: " + string(normalizeFilter(m.query.Filter)),
		"sort: " + string(normalizeSort(m.query.Sort)),
		"category: " + m.currentCategory(),
	}
	if m.query.Search != "" {
		parts = append(parts, fmt.Sprintf("search: %q", m.query.Search))
	}
	return m.styles.TaskMeta.Render(strings.Join(parts, "  "))
}

// viewTaskList renders the filtered and sorted projection.
func (m *Model) viewTaskList() string {
	if len(m.tasks) == 0 {
		return m.viewEmptyState()
	}

	now := m.now()
	rowWidth := m.width - 4
	lines := make([]string, 0, len(m.tasks))
	for i, task := range m.tasks {
		lines = append(lines, m.renderTaskRow(task, i == m.cursor, now, rowWidth))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderTaskRow(task domain.Task, selected bool, now time.Time, width int) string {
	indicator := " "
	if selected {
		indicator = ">"
	}
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}

	prefix := m.styles.SelectionIndicator.Render(indicator) + " " + check + " " +
		m.styles.PriorityStyle(task.Priority).Render(PriorityIcon(task.Priority)) + " "

	var meta []string
	if task.DueDate != "" {
		due := "due " + task.DueDate
		if !task.Completed && domain.IsOverdue(task.DueDate, now) {
			meta = append(meta, m.styles.TaskOverdue.Render(due+" (overdue)"))
		} else {
			meta = append(meta, m.styles.TaskMeta.Render(due))
		}
	}
	if task.Category != "" {
		meta = append(meta, m.styles.TaskMeta.Render(task.Category))
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		meta = append(meta, m.styles.TaskMeta.Render(fmt.Sprintf("%d/%d", done, total)))
	}
	for _, tag := range task.Tags {
		meta = append(meta, m.styles.TaskTag.Render("#"+tag))
	}
	suffix := ""
	if len(meta) > 0 {
		suffix = "  " + strings.Join(meta, " ")
	}

	maxTitle := width - lipgloss.Width(prefix) - lipgloss.Width(suffix)
	if maxTitle < 10 {
		maxTitle = 10
	}
	title := truncate(escapeNewlines(task.Text), maxTitle)

	switch {
	case selected:
		title = m.styles.TaskTitleSelected.Render(title)
	case task.Completed:
		title = m.styles.TaskTitleDone.Render(title)
	default:
		title = m.styles.TaskTitle.Render(title)
	}
	return prefix + title + suffix
}

// viewBoard renders the kanban columns side by side.
func (m *Model) viewBoard() string {
	if len(m.board.Columns) == 0 {
		return m.viewEmptyState()
	}

	colWidth := (m.width-4)/len(m.board.Columns) - 4
	if colWidth < 16 {
		colWidth = 16
	}

	rendered := make([]string, 0, len(m.board.Columns))
	for ci, col := range m.board.Columns {
		active := ci == m.column
		var b strings.Builder
		heading := fmt.Sprintf("%s (%d)", col.Title, len(col.Tasks))
		b.WriteString(m.styles.ColumnTitle.Inherit(m.styles.StatusStyle(col.Status)).Render(heading))
		b.WriteString("\n")
		if len(col.Tasks) == 0 {
			b.WriteString(m.styles.EmptyState.Render("empty"))
		}
		for ri, task := range col.Tasks {
			if ri > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.renderCard(task, active && ri == m.row, colWidth))
		}

		style := m.styles.Column
		if active {
			style = m.styles.ColumnSelected
		}
		rendered = append(rendered, style.Width(colWidth).Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderCard(task domain.Task, selected bool, width int) string {
	title := truncate(escapeNewlines(task.Text), width-2)
	icon := m.styles.PriorityStyle(task.Priority).Render(PriorityIcon(task.Priority))
	if selected {
		title = m.styles.CardSelected.Render(title)
	} else if task.Completed {
		title = m.styles.TaskTitleDone.Render(title)
	} else {
		title = m.styles.Card.Render(title)
	}

	line := icon + " " + title
	var meta []string
	if task.Assignee != "" {
		meta = append(meta, "@"+task.Assignee)
	}
	if task.DueDate != "" {
		meta = append(meta, task.DueDate)
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		meta = append(meta, fmt.Sprintf("%d/%d", done, total))
	}
	if len(meta) > 0 {
		line += "\n  " + m.styles.TaskMeta.Render(truncate(strings.Join(meta, " "), width-2))
	}
	return line
}

func (m *Model) viewEmptyState() string {
	if m.stats.Total == 0 {
		return m.styles.EmptyState.Render("No tasks yet. Press n to add one.")
	}
	return m.styles.EmptyState.Render("No tasks match the current view.")
}

func (m *Model) viewConfirmDialog() string {
	var what string
	switch m.confirmAction {
	case ConfirmRemove:
		what = "Remove this task?"
		if task, ok := m.SelectedTask(); ok && task.ID == m.confirmID {
			what = fmt.Sprintf("Remove %q?", task.Text)
		}
	case ConfirmClear:
		what = fmt.Sprintf("Remove %d completed task(s)?", m.stats.Completed)
	case ConfirmNone:
	}
	return m.styles.Confirm.Render(what + " [y/N]")
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.HeaderText.Render("Keybindings"))
	b.WriteString("\n\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(m.styles.TaskMeta.Render("Press ? or esc to close"))
	return b.String()
}

func (m *Model) now() time.Time {
	if m.container != nil && m.container.Clock != nil {
		return m.container.Clock.Now()
	}
	return time.Now()
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

func truncate(s string, width int) string {
	if width < 4 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}
