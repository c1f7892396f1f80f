package usecase

import (
	"context"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Query domain.Query // Filter, category, search text and sort mode
}

// ListTasksOutput contains the projection and the summary of the whole collection.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Tasks      []domain.Task // Filtered and sorted projection
	Categories []string      // Configured categories plus those in use
	Tags       []string      // Distinct tags in first-seen order
	Stats      domain.Stats  // Statistics over the unfiltered collection
}

// ListTasks is the use case for running the derivation pipeline.
type ListTasks struct {
	store  domain.TaskStore
	clock  domain.Clock
	logger domain.Logger
	config *domain.Config
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore, clock domain.Clock, logger domain.Logger, config *domain.Config) *ListTasks {
	return &ListTasks{
		store:  store,
		clock:  clock,
		logger: logger,
		config: config,
	}
}

// Execute returns the projection for the query together with the statistics.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	col, err := shared.LoadCollection(uc.store, nil, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	all := col.Tasks()
	now := uc.clock.Now()

	var configured []string
	if uc.config != nil {
		configured = uc.config.Tasks.Categories
	}

	return &ListTasksOutput{
		Tasks:      domain.Project(all, in.Query, now),
		Stats:      domain.ComputeStats(all, now),
		Tags:       domain.AllTags(all),
		Categories: domain.Categories(configured, all),
	}, nil
}
