package domain

import (
	"slices"
	"strings"
	"time"
)

// Task represents a single to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`                     // Captured once at creation
	ID        string     `json:"id" yaml:"id"`                                   // Opaque unique identifier
	Text      string     `json:"text" yaml:"text"`                               // Display title, never blank
	Priority  Priority   `json:"priority" yaml:"priority"`                       // Sort key only
	DueDate   string     `json:"dueDate,omitempty" yaml:"dueDate,omitempty"`     // YYYY-MM-DD, empty = no deadline
	Category  string     `json:"category" yaml:"category"`                       // Open vocabulary
	Notes     string     `json:"notes,omitempty" yaml:"notes,omitempty"`         // Free text
	Status    Status     `json:"status" yaml:"status"`                           // Kanban column
	Assignee  string     `json:"assignee,omitempty" yaml:"assignee,omitempty"`   // Board card owner
	Recurring Recurrence `json:"recurring,omitempty" yaml:"recurring,omitempty"` // Display only
	Tags      []string   `json:"tags" yaml:"tags"`                               // Set semantics
	Subtasks  []Subtask  `json:"subtasks" yaml:"subtasks"`                       // Ordered checklist
	Completed bool       `json:"completed" yaml:"completed"`
}

// Subtask is a checklist entry nested inside a task.
type Subtask struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// TaskDraft holds the caller-supplied fields of a task before it is added.
// Zero values fall back to the defaults applied by Collection.Add.
type TaskDraft struct {
	Text      string
	Priority  Priority
	DueDate   string
	Category  string
	Notes     string
	Status    Status
	Assignee  string
	Recurring Recurrence
	Tags      []string
}

// TaskPatch is a partial update. Nil fields are left unchanged.
// ID and CreatedAt are not patchable.
type TaskPatch struct {
	Text      *string
	Priority  *Priority
	DueDate   *string
	Category  *string
	Notes     *string
	Status    *Status
	Assignee  *string
	Recurring *Recurrence
	Tags      *[]string
	Completed *bool
}

// IsEmpty reports whether the patch carries no field at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Text == nil && p.Priority == nil && p.DueDate == nil &&
		p.Category == nil && p.Notes == nil && p.Status == nil &&
		p.Assignee == nil && p.Recurring == nil && p.Tags == nil &&
		p.Completed == nil
}

// apply merges the patch into the task.
// A blank text is ignored so that a task never loses its title.
func (p TaskPatch) apply(t *Task) {
	if p.Text != nil {
		if text := strings.TrimSpace(*p.Text); text != "" {
			t.Text = text
		}
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.DueDate != nil {
		t.DueDate = strings.TrimSpace(*p.DueDate)
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.Recurring != nil {
		t.Recurring = *p.Recurring
	}
	if p.Tags != nil {
		t.Tags = NormalizeTags(*p.Tags)
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// HasTag reports whether the task carries the given tag.
func (t *Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, tag)
}

// SubtaskProgress returns the number of completed subtasks and the total.
func (t *Task) SubtaskProgress() (done, total int) {
	for _, s := range t.Subtasks {
		if s.Completed {
			done++
		}
	}
	return done, len(t.Subtasks)
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	t.Tags = slices.Clone(t.Tags)
	t.Subtasks = slices.Clone(t.Subtasks)
	return t
}

// NormalizeTags trims tags, drops empty ones and removes duplicates,
// keeping the first occurrence of each.
func NormalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(result, tag) {
			continue
		}
		result = append(result, tag)
	}
	return result
}
