package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// AddSubtaskInput contains the parameters for adding a subtask.
type AddSubtaskInput struct {
	TaskRef string // Parent task id or unique id prefix
	Text    string // Subtask text (blank makes the call a no-op)
}

// AddSubtaskOutput contains the result of adding a subtask.
type AddSubtaskOutput struct {
	Task    domain.Task    // The parent task after the change
	Subtask domain.Subtask // The new subtask
	Added   bool           // False when the parent is unknown or the text blank
}

// AddSubtask is the use case for appending a checklist entry to a task.
type AddSubtask struct {
	store  domain.TaskStore
	ids    domain.IDGenerator
	logger domain.Logger
}

// NewAddSubtask creates a new AddSubtask use case.
func NewAddSubtask(store domain.TaskStore, ids domain.IDGenerator, logger domain.Logger) *AddSubtask {
	return &AddSubtask{
		store:  store,
		ids:    ids,
		logger: logger,
	}
}

// Execute appends the subtask and saves the collection.
func (uc *AddSubtask) Execute(_ context.Context, in AddSubtaskInput) (*AddSubtaskOutput, error) {
	col, err := shared.LoadCollection(uc.store, uc.ids, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &AddSubtaskOutput{}, nil
	}

	sub, ok := col.AddSubtask(id, in.Text)
	if !ok {
		return &AddSubtaskOutput{}, nil
	}
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}
	task, _ := col.Get(id)

	if uc.logger != nil {
		uc.logger.Info(id, "subtask", fmt.Sprintf("added: %q", sub.Text))
	}

	return &AddSubtaskOutput{Task: task, Subtask: sub, Added: true}, nil
}
