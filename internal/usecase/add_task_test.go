package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	deps := newTestDeps(task("old", "Existing"))
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{
		Text:     "  Buy groceries  ",
		Priority: domain.PriorityHigh,
		DueDate:  "2025-06-03",
		Category: "Shopping",
		Tags:     []string{"food", "food", "weekly"},
		Subtasks: []string{"milk", " ", "eggs"},
	})

	// Assert
	require.NoError(t, err)
	require.True(t, out.Added)
	assert.Equal(t, "Buy groceries", out.Task.Text)
	assert.Equal(t, domain.PriorityHigh, out.Task.Priority)
	assert.Equal(t, domain.StatusTodo, out.Task.Status)
	assert.Equal(t, []string{"food", "weekly"}, out.Task.Tags)
	assert.Equal(t, testNow, out.Task.CreatedAt)
	require.Len(t, out.Task.Subtasks, 2)
	assert.Equal(t, "milk", out.Task.Subtasks[0].Text)
	assert.False(t, out.Task.Subtasks[0].Completed)

	// Verify the task was prepended and saved
	assert.Equal(t, 1, deps.store.SaveCalls)
	require.Len(t, deps.store.Tasks, 2)
	assert.Equal(t, out.Task.ID, deps.store.Tasks[0].ID)
	assert.True(t, deps.logger.HasEntry("INFO", "task"))
}

func TestAddTask_Execute_ConfigDefaults(t *testing.T) {
	// Setup
	deps := newTestDeps()
	cfg := domain.NewDefaultConfig()
	cfg.Tasks.DefaultCategory = "Errands"
	cfg.Tasks.DefaultPriority = "low"
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, cfg)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{Text: "Call plumber"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Errands", out.Task.Category)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
}

func TestAddTask_Execute_BlankTextIsNoOp(t *testing.T) {
	// Setup
	deps := newTestDeps(task("a", "Existing"))
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{Text: "   "})

	// Assert
	require.NoError(t, err)
	assert.False(t, out.Added)
	assert.Equal(t, 0, deps.store.SaveCalls)
	assert.Len(t, deps.store.Tasks, 1)
}

func TestAddTask_Execute_InvalidDueDate(t *testing.T) {
	// Setup
	deps := newTestDeps()
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	_, err := uc.Execute(context.Background(), AddTaskInput{Text: "x", DueDate: "next tuesday"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidDueDate)
	assert.Equal(t, 0, deps.store.SaveCalls)
}

func TestAddTask_Execute_InvalidStatus(t *testing.T) {
	// Setup
	deps := newTestDeps()
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	_, err := uc.Execute(context.Background(), AddTaskInput{Text: "x", Status: "blocked"})

	// Assert
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	// Setup
	deps := newTestDeps()
	deps.store.SaveErr = assert.AnError
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	_, err := uc.Execute(context.Background(), AddTaskInput{Text: "x"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save tasks")
}

func TestAddTask_Execute_LoadError(t *testing.T) {
	// Setup
	deps := newTestDeps()
	deps.store.LoadErr = assert.AnError
	uc := NewAddTask(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	_, err := uc.Execute(context.Background(), AddTaskInput{Text: "x"})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load tasks")
}
