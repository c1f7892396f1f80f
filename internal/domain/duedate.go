package domain

import (
	"strings"
	"time"
)

// DateLayout is the storage format of due dates.
const DateLayout = "2006-01-02"

// ParseDueDate parses a stored due date as midnight in loc.
// Full RFC 3339 timestamps are accepted as well.
// Returns false for empty or malformed input, which means "no deadline".
func ParseDueDate(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(loc), true
	}
	return time.Time{}, false
}

// IsOverdue reports whether a due date has passed.
// A task due today is not overdue. Completion is not considered here.
func IsOverdue(dueDate string, now time.Time) bool {
	due, ok := ParseDueDate(dueDate, now.Location())
	if !ok {
		return false
	}
	return due.Before(now) && !sameDay(due, now)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
