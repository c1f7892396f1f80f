// Package tui provides the terminal user interface for taskflow.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Default navigation mode
	ModeAdd                 // New task text input
	ModeSearch              // Search text input
	ModeSubtask             // Subtask text input for the selected task
	ModeConfirm             // Confirmation dialog mode
	ModeHelp                // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeAdd:
		return "add"
	case ModeSearch:
		return "search"
	case ModeSubtask:
		return "subtask"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeAdd, ModeSearch, ModeSubtask:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ViewMode selects how tasks are laid out.
type ViewMode int

const (
	ViewList  ViewMode = iota // Filtered and sorted list
	ViewBoard                 // Kanban columns
)

// String returns the string representation of the view.
func (v ViewMode) String() string {
	if v == ViewBoard {
		return "board"
	}
	return "list"
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmRemove               // Remove the selected task
	ConfirmClear                // Remove every completed task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmRemove:
		return "remove"
	case ConfirmClear:
		return "clear completed"
	}
	return ""
}
