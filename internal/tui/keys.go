package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding // Previous board column
	Right key.Binding // Next board column

	// Task management
	Add        key.Binding // Add a task
	Toggle     key.Binding // Toggle completion
	Delete     key.Binding // Remove task
	Subtask    key.Binding // Add a subtask
	Priority   key.Binding // Cycle priority
	StatusNext key.Binding // Move card right
	StatusPrev key.Binding // Move card left
	Clear      key.Binding // Clear completed

	// View
	SwitchView key.Binding // List <-> board
	Search     key.Binding // Enter search mode
	Filter     key.Binding // Cycle status filter
	Sort       key.Binding // Cycle sort mode
	Category   key.Binding // Cycle category
	Refresh    key.Binding // Reload from the store
	Help       key.Binding // Show help

	// General
	Quit    key.Binding // Quit application
	Escape  key.Binding // Cancel/back
	Enter   key.Binding // Submit input
	Confirm key.Binding // Confirm action (in confirm mode)
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next column"),
		),
		Add: key.NewBinding(
			key.WithKeys("n", "a"),
			key.WithHelp("n", "new task"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Subtask: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "add subtask"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle priority"),
		),
		StatusNext: key.NewBinding(
			key.WithKeys("]", ">"),
			key.WithHelp("]", "move right"),
		),
		StatusPrev: key.NewBinding(
			key.WithKeys("[", "<"),
			key.WithHelp("[", "move left"),
		),
		Clear: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear completed"),
		),
		SwitchView: key.NewBinding(
			key.WithKeys("tab", "b"),
			key.WithHelp("tab", "list/board"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "sort"),
		),
		Category: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "category"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Delete, k.SwitchView, k.Search, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},                        // Navigation
		{k.Add, k.Toggle, k.Delete, k.Subtask},                 // Task management
		{k.Priority, k.StatusNext, k.StatusPrev, k.Clear},      // Editing
		{k.SwitchView, k.Search, k.Filter, k.Sort, k.Category}, // View
		{k.Refresh, k.Help, k.Quit},                            // General
	}
}
