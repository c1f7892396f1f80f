package usecase

import (
	"time"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
)

// testNow is the fixed clock time used across use case tests.
var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

type testDeps struct {
	store  *testutil.MockTaskStore
	ids    *testutil.SequenceIDs
	clock  *testutil.MockClock
	logger *testutil.MockLogger
}

func newTestDeps(tasks ...domain.Task) *testDeps {
	return &testDeps{
		store:  testutil.NewMockTaskStore(tasks...),
		ids:    &testutil.SequenceIDs{},
		clock:  &testutil.MockClock{NowTime: testNow},
		logger: &testutil.MockLogger{},
	}
}

// task builds a stored task with sensible defaults.
func task(id, text string) domain.Task {
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
