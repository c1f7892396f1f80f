package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// RemoveTaskInput contains the parameters for removing a task.
type RemoveTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// RemoveTaskOutput contains the result of removing a task.
type RemoveTaskOutput struct {
	Task    domain.Task // The removed task
	Removed bool        // False when no task matched TaskRef
}

// RemoveTask is the use case for deleting a task. There is no undo.
type RemoveTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewRemoveTask creates a new RemoveTask use case.
func NewRemoveTask(store domain.TaskStore, logger domain.Logger) *RemoveTask {
	return &RemoveTask{
		store:  store,
		logger: logger,
	}
}

// Execute removes the task and saves the collection.
func (uc *RemoveTask) Execute(_ context.Context, in RemoveTaskInput) (*RemoveTaskOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &RemoveTaskOutput{}, nil
	}

	removed, _ := col.Get(id)
	col.Remove(id)
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", fmt.Sprintf("removed: %q", removed.Text))
	}

	return &RemoveTaskOutput{Task: removed, Removed: true}, nil
}
