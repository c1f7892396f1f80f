// Package shared provides shared utilities for use cases.
package shared

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
)

// LoadCollection loads the saved snapshot into a new collection.
// A corrupted snapshot is logged and replaced by an empty collection.
// Other load errors are returned.
func LoadCollection(store domain.TaskStore, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) (*domain.Collection, error) {
	tasks, err := store.Load()
	if err != nil {
		if !errors.Is(err, domain.ErrSnapshotCorrupted) {
			return nil, fmt.Errorf("load tasks: %w", err)
		}
		if logger != nil {
			logger.Warn("", "store", fmt.Sprintf("starting from an empty collection: %v", err))
		}
		tasks = nil
	}
	return domain.NewCollection(tasks, ids, clock), nil
}

// SaveCollection writes the collection back to the store.
func SaveCollection(store domain.TaskStore, col *domain.Collection) error {
	if err := store.Save(col.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// ResolveTaskID turns a full id or unique id prefix into a task id.
// Returns false when no task matches.
func ResolveTaskID(col *domain.Collection, ref string) (string, bool, error) {
	id, ok, err := col.Resolve(ref)
	if err != nil {
		return "", false, fmt.Errorf("%w: %q", err, ref)
	}
	return id, ok, nil
}

// GetTask resolves ref and returns the task, or domain.ErrTaskNotFound.
func GetTask(col *domain.Collection, ref string) (domain.Task, error) {
	id, ok, err := ResolveTaskID(col, ref)
	if err != nil {
		return domain.Task{}, err
	}
	if !ok {
		return domain.Task{}, fmt.Errorf("%w: %q", domain.ErrTaskNotFound, ref)
	}
	task, _ := col.Get(id)
	return task, nil
}

// ResolveSubtaskID finds a subtask of task by id, 1-based position or unique id prefix.
// Returns false when nothing matches.
func ResolveSubtaskID(task domain.Task, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", false
	}
	for _, s := range task.Subtasks {
		if s.ID == ref {
			return s.ID, true
		}
	}
	if n, err := strconv.Atoi(strings.TrimPrefix(ref, "#")); err == nil {
		if n >= 1 && n <= len(task.Subtasks) {
			return task.Subtasks[n-1].ID, true
		}
		return "", false
	}
	var found string
	for _, s := range task.Subtasks {
		if !strings.HasPrefix(s.ID, ref) {
			continue
		}
		if found != "" {
			return "", false
		}
		found = s.ID
	}
	return found, found != ""
}
