package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ClearCompletedInput contains the parameters for clearing completed tasks.
type ClearCompletedInput struct{}

// ClearCompletedOutput contains the result of clearing completed tasks.
type ClearCompletedOutput struct {
	Removed int // Number of tasks removed
}

// ClearCompleted is the use case for removing every completed task at once.
type ClearCompleted struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewClearCompleted creates a new ClearCompleted use case.
func NewClearCompleted(store domain.TaskStore, logger domain.Logger) *ClearCompleted {
	return &ClearCompleted{
		store:  store,
		logger: logger,
	}
}

// Execute removes completed tasks and saves the collection if any were removed.
func (uc *ClearCompleted) Execute(_ context.Context, _ ClearCompletedInput) (*ClearCompletedOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}

	removed := col.ClearCompleted()
	if removed == 0 {
		return &ClearCompletedOutput{}, nil
	}
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("", "task", fmt.Sprintf("cleared %d completed task(s)", removed))
	}

	return &ClearCompletedOutput{Removed: removed}, nil
}
