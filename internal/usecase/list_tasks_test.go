package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() []domain.Task {
	a := task("a", "Pay rent")
	a.Priority = domain.PriorityUrgent
	a.Category = "Personal"
	a.DueDate = "2025-05-30"
	a.CreatedAt = testNow.Add(-3 * time.Hour)
	a.Tags = []string{"money"}

	b := task("b", "Write report")
	b.Priority = domain.PriorityLow
	b.Category = "Work"
	b.CreatedAt = testNow.Add(-time.Hour)
	b.Tags = []string{"writing", "money"}

	c := task("c", "Old chore")
	c.Completed = true
	c.Category = "Personal"
	c.DueDate = "2025-05-01"
	c.CreatedAt = testNow.Add(-2 * time.Hour)
	return []domain.Task{a, b, c}
}

func TestListTasks_Execute_DefaultQuery(t *testing.T) {
	// Setup
	deps := newTestDeps(listFixture()...)
	uc := NewListTasks(deps.store, deps.clock, deps.logger, domain.NewDefaultConfig())

	// Execute
	out, err := uc.Execute(context.Background(), ListTasksInput{Query: domain.Query{}})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, []string{"b", "c", "a"}, taskIDs(out.Tasks), "newest first")
	assert.Equal(t, domain.Stats{Total: 3, Active: 2, Completed: 1, Overdue: 1, CompletionRate: 33}, out.Stats)
	assert.Equal(t, []string{"money", "writing"}, out.Tags)
	assert.Contains(t, out.Categories, "Work")
	assert.Equal(t, 0, deps.store.SaveCalls, "listing must not save")
}

func TestListTasks_Execute_Queries(t *testing.T) {
	tests := []struct {
		name  string
		query domain.Query
		want  []string
	}{
		{name: "active", query: domain.Query{Filter: domain.FilterActive}, want: []string{"b", "a"}},
		{name: "completed", query: domain.Query{Filter: domain.FilterCompleted}, want: []string{"c"}},
		{name: "overdue excludes completed", query: domain.Query{Filter: domain.FilterOverdue}, want: []string{"a"}},
		{name: "category", query: domain.Query{Category: "Personal"}, want: []string{"c", "a"}},
		{name: "category all", query: domain.Query{Category: domain.CategoryAll}, want: []string{"b", "c", "a"}},
		{name: "search tag", query: domain.Query{Search: "MONEY"}, want: []string{"b", "a"}},
		{name: "sort priority", query: domain.Query{Sort: domain.SortPriority}, want: []string{"a", "c", "b"}},
		{name: "sort category", query: domain.Query{Sort: domain.SortCategory}, want: []string{"a", "c", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps(listFixture()...)
			uc := NewListTasks(deps.store, deps.clock, deps.logger, nil)

			out, err := uc.Execute(context.Background(), ListTasksInput{Query: tt.query})

			require.NoError(t, err)
			assert.Equal(t, tt.want, taskIDs(out.Tasks))
			assert.Equal(t, 3, out.Stats.Total, "stats ignore the query")
		})
	}
}

func TestListTasks_Execute_CorruptedSnapshot(t *testing.T) {
	// Setup
	deps := newTestDeps()
	deps.store.LoadErr = domain.ErrSnapshotCorrupted
	uc := NewListTasks(deps.store, deps.clock, deps.logger, nil)

	// Execute
	out, err := uc.Execute(context.Background(), ListTasksInput{})

	// Assert
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.Equal(t, domain.Stats{}, out.Stats)
	assert.True(t, deps.logger.HasEntry("WARN", "store"))
}

func taskIDs(tasks []domain.Task) []string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	return ids
}
