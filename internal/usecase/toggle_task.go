package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task    domain.Task // The task after the toggle
	Changed bool        // False when no task matched TaskRef
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.TaskStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		store:  store,
		logger: logger,
	}
}

// Execute toggles the completion flag and saves the collection.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ToggleTaskOutput{}, nil
	}

	col.ToggleCompleted(id)
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}
	task, _ := col.Get(id)

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("completed: %t", task.Completed))
	}

	return &ToggleTaskOutput{Task: task, Changed: true}, nil
}
