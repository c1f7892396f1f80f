package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// InitStoreInput contains the input parameters for InitStore.
type InitStoreInput struct {
	DataDir string // Path to the data directory
	Demo    bool   // Seed the sample board tasks into an empty collection
}

// InitStoreOutput contains the output from InitStore.
type InitStoreOutput struct {
	DataDir            string // Path to the data directory
	Seeded             int    // Number of demo tasks added
	AlreadyInitialized bool   // True if the store existed before this call
}

// InitStore prepares the data directory and the task store.
type InitStore struct {
	storeInit domain.StoreInitializer
	store     domain.TaskStore
	ids       domain.IDGenerator
	clock     domain.Clock
	logger    domain.Logger
}

// NewInitStore creates a new InitStore use case.
func NewInitStore(storeInit domain.StoreInitializer, store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *InitStore {
	return &InitStore{
		storeInit: storeInit,
		store:     store,
		ids:       ids,
		clock:     clock,
		logger:    logger,
	}
}

// Execute creates the data directory and an empty store.
// Running it again is safe. Demo tasks are only seeded into an empty collection.
func (uc *InitStore) Execute(_ context.Context, in InitStoreInput) (*InitStoreOutput, error) {
	alreadyInitialized := uc.storeInit.IsInitialized()

	if in.DataDir != "" {
		if err := os.MkdirAll(filepath.Join(in.DataDir, "logs"), 0o750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	if _, err := uc.storeInit.Initialize(); err != nil {
		return nil, fmt.Errorf("initialize task store: %w", err)
	}

	out := &InitStoreOutput{
		DataDir:            in.DataDir,
		AlreadyInitialized: alreadyInitialized,
	}
	if !in.Demo {
		return out, nil
	}

	col, err := shared.LoadCollection(uc.store, uc.ids, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}
	if col.Len() > 0 {
		return out, nil
	}
	for _, d := range domain.DemoTasks() {
		if _, ok := col.Add(d); ok {
			out.Seeded++
		}
	}
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("", "init", fmt.Sprintf("seeded %d demo task(s)", out.Seeded))
	}

	return out, nil
}
