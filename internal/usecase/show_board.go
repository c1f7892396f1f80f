package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ShowBoardInput contains the parameters for building the board.
type ShowBoardInput struct {
	Category string // Category filter ("" or "All" = every category)
	Search   string // Text or tag search
}

// ShowBoardOutput contains the board.
type ShowBoardOutput struct {
	Board domain.Board
}

// ShowBoard is the use case for grouping tasks into kanban columns.
type ShowBoard struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewShowBoard creates a new ShowBoard use case.
func NewShowBoard(store domain.TaskStore, logger domain.Logger) *ShowBoard {
	return &ShowBoard{
		store:  store,
		logger: logger,
	}
}

// Execute builds the board from the tasks matching the input.
// Tasks keep collection order inside each column.
func (uc *ShowBoard) Execute(_ context.Context, in ShowBoardInput) (*ShowBoardOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
	if err != nil {
		return nil, err
	}

	var tasks []domain.Task
	for _, t := range col.Tasks() {
		if domain.MatchesCategory(t, in.Category) && domain.MatchesSearch(t, in.Search) {
			tasks = append(tasks, t)
		}
	}
	return &ShowBoardOutput{Board: domain.BuildBoard(tasks)}, nil
}
