package domain

import (
	"slices"
	"strings"
)

// Collection is the in-memory ordered set of tasks.
// New tasks are prepended. Lookups of unknown ids are no-ops, never errors:
// every mutation reports whether it changed anything so callers can skip a save.
// A Collection is not safe for concurrent use.
type Collection struct {
	ids   IDGenerator
	clock Clock
	tasks []Task
}

// NewCollection creates a collection from previously loaded tasks.
// A nil slice yields an empty collection. Nil ids and clock fall back to
// UUIDGenerator and RealClock.
func NewCollection(tasks []Task, ids IDGenerator, clock Clock) *Collection {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if clock == nil {
		clock = RealClock{}
	}
	c := &Collection{
		ids:   ids,
		clock: clock,
		tasks: make([]Task, 0, len(tasks)),
	}
	for _, t := range tasks {
		c.tasks = append(c.tasks, t.Clone())
	}
	return c
}

// Len returns the number of tasks.
func (c *Collection) Len() int {
	return len(c.tasks)
}

// Tasks returns a copy of all tasks in store order.
func (c *Collection) Tasks() []Task {
	result := make([]Task, len(c.tasks))
	for i, t := range c.tasks {
		result[i] = t.Clone()
	}
	return result
}

// Get returns a copy of the task with the given id.
func (c *Collection) Get(id string) (Task, bool) {
	i := c.index(id)
	if i < 0 {
		return Task{}, false
	}
	return c.tasks[i].Clone(), true
}

// Add creates a task from the draft and places it first.
// Blank text makes Add a no-op.
func (c *Collection) Add(d TaskDraft) (Task, bool) {
	text := strings.TrimSpace(d.Text)
	if text == "" {
		return Task{}, false
	}
	priority := d.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	status := d.Status
	if status == "" {
		status = StatusTodo
	}
	task := Task{
		ID:        c.newTaskID(),
		Text:      text,
		Priority:  priority,
		DueDate:   strings.TrimSpace(d.DueDate),
		Category:  d.Category,
		Notes:     d.Notes,
		Status:    status,
		Assignee:  d.Assignee,
		Recurring: d.Recurring,
		Tags:      NormalizeTags(d.Tags),
		Subtasks:  []Subtask{},
		CreatedAt: c.clock.Now(),
	}
	c.tasks = slices.Insert(c.tasks, 0, task)
	return task.Clone(), true
}

// Remove deletes the task with the given id.
func (c *Collection) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.tasks = slices.Delete(c.tasks, i, i+1)
	return true
}

// Update merges the patch into the task with the given id.
// An empty patch is a no-op.
func (c *Collection) Update(id string, p TaskPatch) (Task, bool) {
	i := c.index(id)
	if i < 0 || p.IsEmpty() {
		return Task{}, false
	}
	p.apply(&c.tasks[i])
	return c.tasks[i].Clone(), true
}

// ToggleCompleted flips the completion flag of the task.
// Subtasks and status are left untouched.
func (c *Collection) ToggleCompleted(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.tasks[i].Completed = !c.tasks[i].Completed
	return true
}

// AddSubtask appends an open subtask to the task.
// Blank text or an unknown task makes AddSubtask a no-op.
func (c *Collection) AddSubtask(taskID, text string) (Subtask, bool) {
	text = strings.TrimSpace(text)
	i := c.index(taskID)
	if i < 0 || text == "" {
		return Subtask{}, false
	}
	task := &c.tasks[i]
	sub := Subtask{ID: c.newSubtaskID(task), Text: text}
	task.Subtasks = append(task.Subtasks, sub)
	return sub, true
}

// ToggleSubtask flips the completion flag of one subtask.
// The parent's completion flag is not affected.
func (c *Collection) ToggleSubtask(taskID, subtaskID string) bool {
	i := c.index(taskID)
	if i < 0 {
		return false
	}
	subs := c.tasks[i].Subtasks
	for j := range subs {
		if subs[j].ID == subtaskID {
			subs[j].Completed = !subs[j].Completed
			return true
		}
	}
	return false
}

// ClearCompleted removes every completed task and returns how many were removed.
func (c *Collection) ClearCompleted() int {
	before := len(c.tasks)
	c.tasks = slices.DeleteFunc(c.tasks, func(t Task) bool {
		return t.Completed
	})
	return before - len(c.tasks)
}

// SetStatus moves the task to another board column.
// Any status may follow any other. The completion flag is not affected.
func (c *Collection) SetStatus(id string, status Status) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.tasks[i].Status = status
	return true
}

// Resolve finds the id of a task from its full id or a unique prefix of it.
// An exact match always wins. Returns ErrAmbiguousID when the prefix
// matches more than one task, and false when nothing matches.
func (c *Collection) Resolve(ref string) (string, bool, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false, nil
	}
	if c.index(ref) >= 0 {
		return ref, true, nil
	}
	var found string
	for _, t := range c.tasks {
		if !strings.HasPrefix(t.ID, ref) {
			continue
		}
		if found != "" {
			return "", false, ErrAmbiguousID
		}
		found = t.ID
	}
	return found, found != "", nil
}

func (c *Collection) index(id string) int {
	return slices.IndexFunc(c.tasks, func(t Task) bool {
		return t.ID == id
	})
}

func (c *Collection) newTaskID() string {
	for {
		id := c.ids.NewID()
		if c.index(id) < 0 {
			return id
		}
	}
}

func (c *Collection) newSubtaskID(task *Task) string {
	for {
		id := c.ids.NewID()
		if !slices.ContainsFunc(task.Subtasks, func(s Subtask) bool { return s.ID == id }) {
			return id
		}
	}
}
