package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// SetStatusInput contains the parameters for moving a task on the board.
type SetStatusInput struct {
	TaskRef string        // Task id or unique id prefix
	Status  domain.Status // Target column
}

// SetStatusOutput contains the result of moving a task.
type SetStatusOutput struct {
	Task     domain.Task   // The task after the move
	Previous domain.Status // Status before the move
	Changed  bool          // False when no task matched TaskRef
}

// SetStatus is the use case for moving a task between board columns.
// Every transition is allowed, including to the current status.
type SetStatus struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(store domain.TaskStore, logger domain.Logger) *SetStatus {
	return &SetStatus{
		store:  store,
		logger: logger,
	}
}

// Execute sets the status and saves the collection.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &SetStatusOutput{}, nil
	}

	before, _ := col.Get(id)
	col.SetStatus(id, in.Status)
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}
	task, _ := col.Get(id)

	if uc.logger != nil {
		uc.logger.Info(id, "status", fmt.Sprintf("%s -> %s", before.Status, task.Status))
	}

	return &SetStatusOutput{Task: task, Previous: before.Status, Changed: true}, nil
}
