package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/taskflow/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	TitleDone     lipgloss.Color

	// Column colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Review     lipgloss.Color
	Done       lipgloss.Color

	// Priority colors
	Urgent lipgloss.Color
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	TitleDone:     lipgloss.Color("#636E72"), // Gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Review:     lipgloss.Color("#A29BFE"), // Lavender
	Done:       lipgloss.Color("#00B894"), // Green

	Urgent: lipgloss.Color("#D63031"), // Red
	High:   lipgloss.Color("#E17055"), // Orange
	Medium: lipgloss.Color("#FDCB6E"), // Yellow
	Low:    lipgloss.Color("#00B894"), // Green
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	HeaderInfo lipgloss.Style

	// Task rows
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskMeta           lipgloss.Style
	TaskOverdue        lipgloss.Style
	TaskTag            lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Board
	Column         lipgloss.Style
	ColumnTitle    lipgloss.Style
	Card           lipgloss.Style
	CardSelected   lipgloss.Style
	ColumnSelected lipgloss.Style

	// Status line
	Notice      lipgloss.Style
	ErrorMsg    lipgloss.Style
	InputPrompt lipgloss.Style
	Confirm     lipgloss.Style
	Footer      lipgloss.Style
	EmptyState  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),

		Header: lipgloss.NewStyle().
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		TaskTitleSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),
		TaskTitleDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(Colors.TitleDone),
		TaskMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		TaskOverdue: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Error),
		TaskTag: lipgloss.NewStyle().
			Foreground(Colors.Secondary),
		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.Primary),

		Column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted).
			Padding(0, 1),
		ColumnSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),
		ColumnTitle: lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1),
		Card: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),
		CardSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Success),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error),
		InputPrompt: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),
		Confirm: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Warning),
		Footer: lipgloss.NewStyle().
			MarginTop(1).
			Foreground(Colors.Muted),
		EmptyState: lipgloss.NewStyle().
			Italic(true).
			Foreground(Colors.Muted),
	}
}

// StatusStyle returns the style for a board column.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch status.Column() {
	case domain.StatusInProgress:
		return base.Foreground(Colors.InProgress)
	case domain.StatusReview:
		return base.Foreground(Colors.Review)
	case domain.StatusDone:
		return base.Foreground(Colors.Done)
	case domain.StatusTodo:
		return base.Foreground(Colors.Todo)
	}
	return base.Foreground(Colors.Todo)
}

// PriorityStyle returns the style for a priority label.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch p {
	case domain.PriorityUrgent:
		return base.Bold(true).Foreground(Colors.Urgent)
	case domain.PriorityHigh:
		return base.Foreground(Colors.High)
	case domain.PriorityMedium:
		return base.Foreground(Colors.Medium)
	case domain.PriorityLow:
		return base.Foreground(Colors.Low)
	}
	return base.Foreground(Colors.Muted)
}

// PriorityIcon returns a one-character marker for a priority.
func PriorityIcon(p domain.Priority) string {
	switch p {
	case domain.PriorityUrgent:
		return "!"
	case domain.PriorityHigh:
		return "▲"
	case domain.PriorityMedium:
		return "●"
	case domain.PriorityLow:
		return "▽"
	}
	return "?"
}
