// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// AddTaskInput contains the parameters for adding a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Text      string            // Task text (required; blank makes the call a no-op)
	DueDate   string            // YYYY-MM-DD (optional)
	Category  string            // Category (optional, empty = configured default)
	Notes     string            // Free-form notes (optional)
	Assignee  string            // Board card owner (optional)
	Priority  domain.Priority   // Priority (optional, empty = configured default)
	Status    domain.Status     // Board column (optional, empty = todo)
	Recurring domain.Recurrence // Recurrence label (optional)
	Tags      []string          // Tags (optional)
	Subtasks  []string          // Subtask texts (optional)
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Task  domain.Task // The created task, including its subtasks
	Added bool        // False when the text was blank
}

// AddTask is the use case for adding a task to the collection.
type AddTask struct {
	store  domain.TaskStore
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
	config *domain.Config
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, config *domain.Config) *AddTask {
	return &AddTask{
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
		config: config,
	}
}

// Execute adds the task and saves the collection.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	if err := validateDueDate(in.DueDate); err != nil {
		return nil, err
	}
	if in.Status != "" && !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}
	if in.Priority != "" && !in.Priority.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPriority, in.Priority)
	}

	col, err := shared.LoadCollection(uc.store, uc.ids, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	cfg := uc.config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	draft := domain.TaskDraft{
		Text:      in.Text,
		Priority:  in.Priority,
		DueDate:   in.DueDate,
		Category:  strings.TrimSpace(in.Category),
		Notes:     in.Notes,
		Status:    in.Status,
		Assignee:  in.Assignee,
		Recurring: in.Recurring,
		Tags:      in.Tags,
	}
	if draft.Priority == "" {
		draft.Priority = cfg.NewTaskPriority()
	}
	if draft.Category == "" {
		draft.Category = cfg.NewTaskCategory()
	}

	task, ok := col.Add(draft)
	if !ok {
		return &AddTaskOutput{Added: false}, nil
	}
	for _, text := range in.Subtasks {
		col.AddSubtask(task.ID, text)
	}
	task, _ = col.Get(task.ID)

	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("added: %q", task.Text))
	}

	return &AddTaskOutput{Task: task, Added: true}, nil
}

// validateDueDate rejects due dates that are set but not parseable.
func validateDueDate(dueDate string) error {
	dueDate = strings.TrimSpace(dueDate)
	if dueDate == "" {
		return nil
	}
	if _, ok := domain.ParseDueDate(dueDate, time.UTC); !ok {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDueDate, dueDate)
	}
	return nil
}
