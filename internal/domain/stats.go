package domain

import (
	"math"
	"time"
)

// Stats summarizes the whole collection, independent of any projection.
type Stats struct {
	Total          int `json:"total" yaml:"total"`
	Active         int `json:"active" yaml:"active"`
	Completed      int `json:"completed" yaml:"completed"`
	Overdue        int `json:"overdue" yaml:"overdue"`
	CompletionRate int `json:"completionRate" yaml:"completionRate"` // Percent, 0-100
}

// ComputeStats counts tasks by state.
// Overdue counts active tasks whose due date has passed.
func ComputeStats(tasks []Task, now time.Time) Stats {
	var s Stats
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Active++
		if IsOverdue(t.DueDate, now) {
			s.Overdue++
		}
	}
	s.CompletionRate = CompletionRate(s.Completed, s.Total)
	return s
}

// CompletionRate returns completed/total as a whole percentage,
// rounding halves away from zero. Returns 0 when total is 0.
func CompletionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) * 100 / float64(total)))
}

// AllTags returns the distinct tags of all tasks in first-seen order.
func AllTags(tasks []Task) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, t := range tasks {
		for _, tag := range t.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// Categories returns the configured categories followed by any category
// found in tasks that is not configured, in first-seen order.
func Categories(configured []string, tasks []Task) []string {
	seen := make(map[string]struct{}, len(configured))
	result := make([]string, 0, len(configured))
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		result = append(result, c)
	}
	for _, c := range configured {
		add(c)
	}
	for _, t := range tasks {
		add(t.Category)
	}
	return result
}
