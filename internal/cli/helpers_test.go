package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// testTask returns an active todo task with a fixed creation time.
func testTask(id, text string) domain.Task {
	return domain.Task{
		ID:        id,
		Text:      text,
		Priority:  domain.PriorityMedium,
		Category:  "Work",
		Status:    domain.StatusTodo,
		Tags:      []string{},
		Subtasks:  []domain.Subtask{},
		CreatedAt: testNow.Add(-time.Hour),
	}
}

// newTestContainer creates a container over an in-memory store.
func newTestContainer(t *testing.T, tasks ...domain.Task) (*app.Container, *testutil.MockTaskStore) {
	t.Helper()
	store := testutil.NewMockTaskStore(tasks...)
	c := app.NewWithDeps(
		app.Config{DataDir: t.TempDir()},
		nil,
		store,
		&testutil.MockStoreInitializer{},
		&testutil.MockClock{NowTime: testNow},
		&testutil.SequenceIDs{},
		nil,
	)
	return c, store
}

// run executes the root command with args and returns stdout.
func run(c *app.Container, args ...string) (string, error) {
	root := NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}
