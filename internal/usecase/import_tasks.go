package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ImportTasksInput contains the parameters for importing tasks from a file.
type ImportTasksInput struct {
	Content []byte // YAML task file content
	DryRun  bool   // Parse and validate only
}

// ImportTasksOutput contains the result of an import.
type ImportTasksOutput struct {
	Tasks   []domain.Task // Tasks added (or that would be added), in file order
	Skipped int           // Entries skipped because their text was blank
}

// ImportTasks is the use case for adding many tasks from a YAML file.
// Every entry goes through Collection.Add, so blank entries are skipped
// exactly like interactive adds.
type ImportTasks struct {
	store  domain.TaskStore
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
	config *domain.Config
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger, config *domain.Config) *ImportTasks {
	return &ImportTasks{
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
		config: config,
	}
}

// Execute parses the file and adds its tasks.
// Entries are added last to first so the file's first task ends up on top.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	entries, err := domain.ParseTaskFile(in.Content)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if err := validateDueDate(e.DueDate); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}

	col, err := shared.LoadCollection(uc.store, uc.ids, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}

	cfg := uc.config
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	out := &ImportTasksOutput{}
	added := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		draft, err := e.Draft()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if draft.Priority == "" {
			draft.Priority = cfg.NewTaskPriority()
		}
		if strings.TrimSpace(draft.Category) == "" {
			draft.Category = cfg.NewTaskCategory()
		}

		task, ok := col.Add(draft)
		if !ok {
			out.Skipped++
			continue
		}
		for _, s := range e.Subtasks {
			sub, ok := col.AddSubtask(task.ID, s.Text)
			if ok && s.Completed {
				col.ToggleSubtask(task.ID, sub.ID)
			}
		}
		if e.Completed {
			col.ToggleCompleted(task.ID)
		}
		added = append(added, task.ID)
	}

	for i := len(added) - 1; i >= 0; i-- {
		task, _ := col.Get(added[i])
		out.Tasks = append(out.Tasks, task)
	}

	if in.DryRun || len(added) == 0 {
		return out, nil
	}
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("", "import", fmt.Sprintf("imported %d task(s), skipped %d", len(added), out.Skipped))
	}

	return out, nil
}
