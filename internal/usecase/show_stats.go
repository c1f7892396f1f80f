package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ShowStatsInput contains the parameters for computing statistics.
type ShowStatsInput struct{}

// ShowStatsOutput contains the to-do and board summaries.
type ShowStatsOutput struct {
	Stats domain.Stats      `json:"stats" yaml:"stats"`
	Board domain.BoardStats `json:"board" yaml:"board"`
}

// ShowStats is the use case for summarizing the whole collection.
type ShowStats struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
}

// NewShowStats creates a new ShowStats use case.
func NewShowStats(store domain.TaskStore, clock domain.Clock, logger domain.Logger) *ShowStats {
	return &ShowStats{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Execute computes statistics over the unfiltered collection.
func (uc *ShowStats) Execute(_ context.Context, _ ShowStatsInput) (*ShowStatsOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}
	all := col.Tasks()
	return &ShowStatsOutput{
		Stats: domain.ComputeStats(all, uc.clock.Now()),
		Board: domain.BuildBoard(all).Stats,
	}, nil
}
