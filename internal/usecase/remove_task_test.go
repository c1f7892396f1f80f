package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveTask_Execute_Success(t *testing.T) {
	// Setup
	deps := newTestDeps(task("abc123", "Task to delete"), task("def456", "Keep"))
	uc := NewRemoveTask(deps.store, deps.logger)

	// Execute
	out, err := uc.Execute(context.Background(), RemoveTaskInput{TaskRef: "abc"})

	// Assert
	require.NoError(t, err)
	assert.True(t, out.Removed)
	assert.Equal(t, "Task to delete", out.Task.Text)

	// Verify task is deleted
	_, exists := deps.store.Find("abc123")
	assert.False(t, exists, "task should be deleted from store")
	_, exists = deps.store.Find("def456")
	assert.True(t, exists)
}

func TestRemoveTask_Execute_UnknownIsNoOp(t *testing.T) {
	// Setup
	deps := newTestDeps(task("abc123", "Only"))
	uc := NewRemoveTask(deps.store, deps.logger)

	// Execute
	out, err := uc.Execute(context.Background(), RemoveTaskInput{TaskRef: "999"})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Removed)
	assert.Equal(t, 0, deps.store.SaveCalls)
	assert.Len(t, deps.store.Tasks, 1)
}

func TestRemoveTask_Execute_SaveError(t *testing.T) {
	// Setup
	deps := newTestDeps(task("abc123", "Only"))
	deps.store.SaveErr = assert.AnError
	uc := NewRemoveTask(deps.store, deps.logger)

	// Execute
	_, err := uc.Execute(context.Background(), RemoveTaskInput{TaskRef: "abc123"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save tasks")
}
