package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ToggleSubtaskInput contains the parameters for toggling a subtask.
type ToggleSubtaskInput struct {
	TaskRef    string // Parent task id or unique id prefix
	SubtaskRef string // Subtask id, unique id prefix, or 1-based position
}

// ToggleSubtaskOutput contains the result of toggling a subtask.
type ToggleSubtaskOutput struct {
	Task    domain.Task    // The parent task after the change
	Subtask domain.Subtask // The subtask after the change
	Changed bool           // False when the task or subtask is unknown
}

// ToggleSubtask is the use case for flipping a subtask's completion flag.
// The parent's completion flag never changes.
type ToggleSubtask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewToggleSubtask creates a new ToggleSubtask use case.
func NewToggleSubtask(store domain.TaskStore, logger domain.Logger) *ToggleSubtask {
	return &ToggleSubtask{
		store:  store,
		logger: logger,
	}
}

// Execute toggles the subtask and saves the collection.
func (uc *ToggleSubtask) Execute(_ context.Context, in ToggleSubtaskInput) (*ToggleSubtaskOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ToggleSubtaskOutput{}, nil
	}
	parent, _ := col.Get(id)
	subID, ok := shared.ResolveSubtaskID(parent, in.SubtaskRef)
	if !ok {
		return &ToggleSubtaskOutput{}, nil
	}

	col.ToggleSubtask(id, subID)
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	out := &ToggleSubtaskOutput{Changed: true}
	out.Task, _ = col.Get(id)
	for _, s := range out.Task.Subtasks {
		if s.ID == subID {
			out.Subtask = s
		}
	}

	if uc.logger != nil {
		uc.logger.Info(id, "subtask", fmt.Sprintf("%q completed: %t", out.Subtask.Text, out.Subtask.Completed))
	}

	return out, nil
}
