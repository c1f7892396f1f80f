package domain

import (
	"fmt"
	"strings"
)

// Status represents the kanban column of a task.
// Every transition between statuses is allowed, including to itself.
type Status string

const (
	StatusTodo       Status = "todo"        // Not started
	StatusInProgress Status = "in-progress" // Being worked on
	StatusReview     Status = "review"      // Awaiting review
	StatusDone       Status = "done"        // Finished on the board
)

// AllStatuses returns all valid status values in board order.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusReview,
		StatusDone,
	}
}

// ParseStatus converts user input into a Status.
// Underscores and spaces are accepted in place of hyphens.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	status := Status(normalized)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: todo, in-progress, review, done)", ErrInvalidStatus, s)
	}
	return status, nil
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "To Do"
	case StatusInProgress:
		return "In Progress"
	case StatusReview:
		return "Review"
	case StatusDone:
		return "Done"
	default:
		return string(s)
	}
}

// IsValid returns true if the status is a known value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	default:
		return false
	}
}

// Column returns the board column the status belongs to.
// Unknown or empty statuses land in the todo column.
func (s Status) Column() Status {
	if s.IsValid() {
		return s
	}
	return StatusTodo
}

// Next returns the status to the right on the board, wrapping around.
func (s Status) Next() Status {
	all := AllStatuses()
	for i, st := range all {
		if st == s.Column() {
			return all[(i+1)%len(all)]
		}
	}
	return StatusTodo
}

// Prev returns the status to the left on the board, wrapping around.
func (s Status) Prev() Status {
	all := AllStatuses()
	for i, st := range all {
		if st == s.Column() {
			return all[(i+len(all)-1)%len(all)]
		}
	}
	return StatusTodo
}
