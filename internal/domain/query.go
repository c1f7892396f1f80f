package domain

import (
	"fmt"
	"strings"
)

// StatusFilter selects tasks by completion and deadline state.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterActive    StatusFilter = "active"
	FilterCompleted StatusFilter = "completed"
	FilterOverdue   StatusFilter = "overdue"
)

// AllStatusFilters returns every status filter.
func AllStatusFilters() []StatusFilter {
	return []StatusFilter{FilterAll, FilterActive, FilterCompleted, FilterOverdue}
}

// ParseStatusFilter converts user input into a StatusFilter.
// The empty string selects FilterAll.
func ParseStatusFilter(s string) (StatusFilter, error) {
	f := StatusFilter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterActive, FilterCompleted, FilterOverdue:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (valid: all, active, completed, overdue)", ErrInvalidFilter, s)
}

// SortMode selects the ordering of a projection.
type SortMode string

const (
	SortDate     SortMode = "date"     // Newest first
	SortPriority SortMode = "priority" // Most urgent first
	SortCategory SortMode = "category" // Ascending by category name
)

// AllSortModes returns every sort mode.
func AllSortModes() []SortMode {
	return []SortMode{SortDate, SortPriority, SortCategory}
}

// ParseSortMode converts user input into a SortMode.
// The empty string selects SortDate.
func ParseSortMode(s string) (SortMode, error) {
	m := SortMode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case "":
		return SortDate, nil
	case SortDate, SortPriority, SortCategory:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (valid: date, priority, category)", ErrInvalidSort, s)
}

// CategoryAll is the category value that disables category filtering.
const CategoryAll = "All"

// Query describes a projection of the collection.
// The zero value selects every task, newest first.
type Query struct {
	Filter   StatusFilter
	Category string // "" or CategoryAll = no filter
	Search   string // Case-insensitive, matches text or tags
	Sort     SortMode
}
