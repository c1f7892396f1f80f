package domain

import (
	"fmt"
	"strings"
)

// Priority is the urgency of a task. It only affects sorting.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// AllPriorities returns the priorities from most to least urgent.
func AllPriorities() []Priority {
	return []Priority{PriorityUrgent, PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority converts user input into a Priority.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q (valid: urgent, high, medium, low)", ErrInvalidPriority, s)
	}
	return p, nil
}

// IsValid returns true if the priority is a known value.
func (p Priority) IsValid() bool {
	return p.Rank() < unknownPriorityRank
}

const unknownPriorityRank = 4

// Rank returns the sort rank of the priority, 0 being the most urgent.
// Unknown priorities rank after low.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return unknownPriorityRank
	}
}

// Recurrence is an informational repeat interval. Nothing is scheduled from it.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence converts user input into a Recurrence.
// "none" and the empty string clear the recurrence.
func ParseRecurrence(s string) (Recurrence, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	switch Recurrence(normalized) {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return Recurrence(normalized), nil
	}
	if normalized == "" || normalized == "none" {
		return RecurrenceNone, nil
	}
	return "", fmt.Errorf("%w: %q (valid: daily, weekly, monthly, none)", ErrInvalidRecurrence, s)
}
