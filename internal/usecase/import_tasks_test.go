package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const importFile = `
tasks:
  - text: Write report
    priority: high
    dueDate: 2025-06-10
    category: Work
    tags: [writing, q2]
    subtasks:
      - text: Outline
        completed: true
      - text: Draft
  - text: "   "
  - text: Water plants
    completed: true
    status: done
`

func TestImportTasks_Execute_Success(t *testing.T) {
	// Setup
	deps := newTestDeps(task("old", "Existing"))
	uc := NewImportTasks(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte(importFile)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, out.Skipped)
	require.Len(t, out.Tasks, 2)

	report := out.Tasks[0]
	assert.Equal(t, "Write report", report.Text)
	assert.Equal(t, domain.PriorityHigh, report.Priority)
	assert.Equal(t, []string{"writing", "q2"}, report.Tags)
	require.Len(t, report.Subtasks, 2)
	assert.True(t, report.Subtasks[0].Completed)
	assert.False(t, report.Subtasks[1].Completed)
	assert.False(t, report.Completed)

	plants := out.Tasks[1]
	assert.True(t, plants.Completed)
	assert.Equal(t, domain.StatusDone, plants.Status)
	assert.Equal(t, domain.DefaultCategory, plants.Category)

	// File order is kept on top of the existing tasks
	require.Len(t, deps.store.Tasks, 3)
	assert.Equal(t, []string{report.ID, plants.ID, "old"}, taskIDs(deps.store.Tasks))
	assert.Equal(t, 1, deps.store.SaveCalls)
}

func TestImportTasks_Execute_DryRun(t *testing.T) {
	// Setup
	deps := newTestDeps()
	uc := NewImportTasks(deps.store, deps.ids, deps.clock, deps.logger, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte(importFile), DryRun: true})

	// Assert
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)
	assert.Equal(t, 0, deps.store.SaveCalls)
	assert.Empty(t, deps.store.Tasks)
}

func TestImportTasks_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty", content: "  \n", wantErr: domain.ErrEmptyFile},
		{name: "no tasks", content: "tasks: []\n", wantErr: domain.ErrNoTasksInFile},
		{name: "bad priority", content: "- text: x\n  priority: asap\n", wantErr: domain.ErrInvalidPriority},
		{name: "bad date", content: "- text: x\n  dueDate: tomorrow\n", wantErr: domain.ErrInvalidDueDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()
			uc := NewImportTasks(deps.store, deps.ids, deps.clock, deps.logger, nil)

			_, err := uc.Execute(context.Background(), ImportTasksInput{Content: []byte(tt.content)})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, deps.store.SaveCalls)
		})
	}
}
