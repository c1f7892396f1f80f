package domain

import (
	"slices"
	"strings"
	"time"
)

// MatchesStatus reports whether the task passes the status filter.
// Unknown filters behave like FilterAll.
func MatchesStatus(t Task, filter StatusFilter, now time.Time) bool {
	switch filter {
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	case FilterOverdue:
		return !t.Completed && IsOverdue(t.DueDate, now)
	default:
		return true
	}
}

// MatchesCategory reports whether the task belongs to the category.
// The empty string and CategoryAll match every task.
func MatchesCategory(t Task, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return t.Category == category
}

// MatchesSearch reports whether text occurs in the task title or in any tag,
// ignoring case. An empty search matches every task.
func MatchesSearch(t Task, text string) bool {
	if text == "" {
		return true
	}
	needle := strings.ToLower(text)
	if strings.Contains(strings.ToLower(t.Text), needle) {
		return true
	}
	return slices.ContainsFunc(t.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), needle)
	})
}

// Project filters and sorts tasks according to q.
// Filters run in the order status, category, search. The sort is stable,
// so ties keep their input order. The input slice is not modified.
func Project(tasks []Task, q Query, now time.Time) []Task {
	result := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if !MatchesStatus(t, q.Filter, now) {
			continue
		}
		if !MatchesCategory(t, q.Category) {
			continue
		}
		if !MatchesSearch(t, q.Search) {
			continue
		}
		result = append(result, t)
	}
	slices.SortStableFunc(result, Comparator(q.Sort))
	return result
}

// Comparator returns the ordering function for a sort mode.
// Unknown modes fall back to SortDate.
func Comparator(mode SortMode) func(a, b Task) int {
	switch mode {
	case SortPriority:
		return func(a, b Task) int {
			return a.Priority.Rank() - b.Priority.Rank()
		}
	case SortCategory:
		return func(a, b Task) int {
			return strings.Compare(a.Category, b.Category)
		}
	default:
		return func(a, b Task) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
	}
}
