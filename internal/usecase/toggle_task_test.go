package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleTask_Execute_Twice(t *testing.T) {
	// Setup
	existing := task("abc123", "Flip me")
	existing.Status = domain.StatusReview
	deps := newTestDeps(existing)
	uc := NewToggleTask(deps.store, deps.logger)

	// Execute
	first, err := uc.Execute(context.Background(), ToggleTaskInput{TaskRef: "abc123"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), ToggleTaskInput{TaskRef: "abc123"})
	require.NoError(t, err)

	// Assert
	assert.True(t, first.Task.Completed)
	assert.False(t, second.Task.Completed)
	assert.Equal(t, domain.StatusReview, second.Task.Status, "toggle must not touch status")
	assert.Equal(t, 2, deps.store.SaveCalls)
}

func TestToggleTask_Execute_KeepsSubtasks(t *testing.T) {
	// Setup
	existing := task("abc123", "Parent")
	existing.Subtasks = []domain.Subtask{{ID: "s1", Text: "child"}}
	deps := newTestDeps(existing)
	uc := NewToggleTask(deps.store, deps.logger)

	// Execute
	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskRef: "abc123"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Task.Completed)
	assert.False(t, out.Task.Subtasks[0].Completed)
}

func TestToggleTask_Execute_UnknownIsNoOp(t *testing.T) {
	// Setup
	deps := newTestDeps(task("abc123", "Only"))
	uc := NewToggleTask(deps.store, deps.logger)

	// Execute
	out, err := uc.Execute(context.Background(), ToggleTaskInput{TaskRef: "nope"})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Changed)
	assert.Equal(t, 0, deps.store.SaveCalls)
}
