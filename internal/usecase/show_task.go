package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskRef string // Task id or unique id prefix
}

// ShowTaskOutput contains the task and values derived from it.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	Task          domain.Task
	SubtasksDone  int
	SubtasksTotal int
	Overdue       bool // Due date passed and the task is still open
}

// ShowTask is the use case for displaying one task.
type ShowTask struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *ShowTask {
	return &ShowTask{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute returns the task, or domain.ErrTaskNotFound.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}
	task, err := shared.GetTask(col, in.TaskRef)
	if err != nil {
		return nil, err
	}

	done, total := task.SubtaskProgress()
	return &ShowTaskOutput{
		Task:          task,
		SubtasksDone:  done,
		SubtasksTotal: total,
		Overdue:       !task.Completed && domain.IsOverdue(task.DueDate, uc.clock.Now()),
	}, nil
}
