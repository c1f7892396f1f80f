package usecase

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// EditTaskInput contains the parameters for editing a task.
// Fields are ordered to minimize memory padding.
type EditTaskInput struct {
	TaskRef    string           // Task id or unique id prefix (required)
	Patch      domain.TaskPatch // Fields to overwrite; nil fields are kept
	AddTags    []string         // Tags to add (optional)
	RemoveTags []string         // Tags to remove (optional)
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task    domain.Task // The task after the edit
	Changed bool        // False when no task matched TaskRef
}

// EditTask is the use case for editing a task.
type EditTask struct {
	store  domain.TaskStore
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *EditTask {
	return &EditTask{
		store:  store,
		ids:    ids,
		clock:  clock,
		logger: logger,
	}
}

// Execute applies the patch to the task and saves the collection.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	patch := in.Patch
	if patch.IsEmpty() && len(in.AddTags) == 0 && len(in.RemoveTags) == 0 {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	col, err := shared.LoadCollection(uc.store, uc.ids, uc.clock, uc.logger)
	if err != nil {
		return nil, err
	}
	id, ok, err := shared.ResolveTaskID(col, in.TaskRef)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &EditTaskOutput{}, nil
	}

	if len(in.AddTags) > 0 || len(in.RemoveTags) > 0 {
		current, _ := col.Get(id)
		base := current.Tags
		if patch.Tags != nil {
			base = *patch.Tags
		}
		tags := updateTags(base, in.AddTags, in.RemoveTags)
		patch.Tags = &tags
	}

	task, _ := col.Update(id, patch)
	if err := shared.SaveCollection(uc.store, col); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(id, "task", "edited")
	}

	return &EditTaskOutput{Task: task, Changed: true}, nil
}

// validatePatch rejects enumerations and dates the store would not understand.
func validatePatch(p domain.TaskPatch) error {
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPriority, *p.Priority)
	}
	if p.Status != nil && !p.Status.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidStatus, *p.Status)
	}
	if p.DueDate != nil {
		if err := validateDueDate(*p.DueDate); err != nil {
			return err
		}
	}
	return nil
}

// updateTags appends added tags and drops removed ones, keeping the order of the rest.
func updateTags(current, add, remove []string) []string {
	result := make([]string, 0, len(current)+len(add))
	for _, tag := range current {
		if slices.Contains(remove, strings.TrimSpace(tag)) {
			continue
		}
		result = append(result, tag)
	}
	for _, tag := range add {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(remove, tag) || slices.Contains(result, tag) {
			continue
		}
		result = append(result, tag)
	}
	return domain.NormalizeTags(result)
}
