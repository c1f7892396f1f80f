package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func TestAddCommand(t *testing.T) {
	// Setup
	c, store := newTestContainer(t)

	// Execute
	out, err := run(c, "add", "Write report",
		"-p", "high", "-d", "2025-06-10", "-c", "Work",
		"-t", "writing", "-t", "q2", "-s", "Outline", "-s", "Draft")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Added task 1: Write report\n", out)
	require.Len(t, store.Tasks, 1)
	got := store.Tasks[0]
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	assert.Equal(t, "2025-06-10", got.DueDate)
	assert.Equal(t, []string{"writing", "q2"}, got.Tags)
	require.Len(t, got.Subtasks, 2)
	assert.Equal(t, "Draft", got.Subtasks[1].Text)
}

func TestAddCommand_BlankTextIsNoChange(t *testing.T) {
	c, store := newTestContainer(t)

	out, err := run(c, "add", "   ")

	require.NoError(t, err)
	assert.Contains(t, out, "No change: task text is blank")
	assert.Empty(t, store.Tasks)
}

func TestAddCommand_InvalidPriority(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := run(c, "add", "Task", "-p", "asap")

	assert.ErrorIs(t, err, domain.ErrInvalidPriority)
}

func TestEditCommand(t *testing.T) {
	tagged := testTask("abc123", "Old title")
	tagged.Tags = []string{"home", "someday"}
	c, store := newTestContainer(t, tagged)

	out, err := run(c, "edit", "abc", "New title", "--priority", "urgent", "--add-tag", "errands", "--rm-tag", "someday")

	require.NoError(t, err)
	assert.Equal(t, "Updated task abc123\n", out)
	got, _ := store.Find("abc123")
	assert.Equal(t, "New title", got.Text)
	assert.Equal(t, domain.PriorityUrgent, got.Priority)
	assert.Equal(t, []string{"home", "errands"}, got.Tags)
}

func TestEditCommand_UnknownIDIsNoChange(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "Title"))

	out, err := run(c, "edit", "zzz", "--notes", "x")

	require.NoError(t, err)
	assert.Contains(t, out, `No change: task "zzz" not found`)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestEditCommand_NoFields(t *testing.T) {
	c, _ := newTestContainer(t, testTask("abc123", "Title"))

	_, err := run(c, "edit", "abc123")

	assert.ErrorIs(t, err, domain.ErrNoFieldsToUpdate)
}

func TestRmCommand(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "Keep"), testTask("def456", "Drop"))

	out, err := run(c, "rm", "def", "nope")

	require.NoError(t, err)
	assert.Contains(t, out, "Removed task def456: Drop")
	assert.Contains(t, out, `No change: task "nope" not found`)
	require.Len(t, store.Tasks, 1)
	assert.Equal(t, "abc123", store.Tasks[0].ID)
}

func TestRmCommand_AmbiguousPrefix(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "One"), testTask("abd456", "Two"))

	_, err := run(c, "rm", "ab")

	assert.ErrorIs(t, err, domain.ErrAmbiguousID)
	assert.Len(t, store.Tasks, 2)
}

func TestToggleCommand(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "Write"))

	out, err := run(c, "toggle", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Task abc123 marked completed\n", out)
	got, _ := store.Find("abc123")
	assert.True(t, got.Completed)

	out, err = run(c, "toggle", "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Task abc123 marked active\n", out)
}

func TestSubtaskCommands(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "Write"))

	out, err := run(c, "subtask", "add", "abc", "Outline")
	require.NoError(t, err)
	assert.Equal(t, "Added subtask to abc123 (0/1 done)\n", out)

	out, err = run(c, "subtask", "toggle", "abc", "1")
	require.NoError(t, err)
	assert.Equal(t, "[x] Outline\n", out)

	got, _ := store.Find("abc123")
	require.Len(t, got.Subtasks, 1)
	assert.True(t, got.Subtasks[0].Completed)
	// Finishing every subtask leaves the parent alone
	assert.False(t, got.Completed)

	out, err = run(c, "subtask", "toggle", "abc", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "No change:")
}

func TestClearCommand(t *testing.T) {
	done := testTask("def456", "Done")
	done.Completed = true
	c, store := newTestContainer(t, testTask("abc123", "Open"), done)

	out, err := run(c, "clear")

	require.NoError(t, err)
	assert.Equal(t, "Cleared 1 completed task(s)\n", out)
	assert.Len(t, store.Tasks, 1)
}

func TestStatusCommand(t *testing.T) {
	c, store := newTestContainer(t, testTask("abc123", "Card"))

	out, err := run(c, "status", "abc", "review")
	require.NoError(t, err)
	assert.Equal(t, "Task abc123: To Do -> Review\n", out)

	out, err = run(c, "status", "abc", "next")
	require.NoError(t, err)
	assert.Equal(t, "Task abc123: Review -> Done\n", out)

	// next wraps around
	_, err = run(c, "status", "abc", "next")
	require.NoError(t, err)
	got, _ := store.Find("abc123")
	assert.Equal(t, domain.StatusTodo, got.Status)
	assert.False(t, got.Completed)
}

func TestStatusCommand_Errors(t *testing.T) {
	c, _ := newTestContainer(t, testTask("abc123", "Card"))

	_, err := run(c, "status", "abc", "blocked")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	out, err := run(c, "status", "zzz", "prev")
	require.NoError(t, err)
	assert.Contains(t, out, `No change: task "zzz" not found`)
}

func TestShowCommand(t *testing.T) {
	tk := testTask("abc123", "Write report")
	tk.Notes = "For the quarterly review"
	tk.DueDate = "2025-05-20"
	tk.Tags = []string{"writing"}
	tk.Subtasks = []domain.Subtask{{ID: "s1", Text: "Outline", Completed: true}, {ID: "s2", Text: "Draft"}}
	c, _ := newTestContainer(t, tk)

	out, err := run(c, "show", "abc")

	require.NoError(t, err)
	assert.Contains(t, out, "# [ ] Write report")
	assert.Contains(t, out, "For the quarterly review")
	assert.Contains(t, out, "ID:       abc123")
	assert.Contains(t, out, "Status:   To Do")
	assert.Contains(t, out, "Tags:     [writing]")
	assert.Contains(t, out, "Subtasks (1/2):")
	assert.Contains(t, out, "  2. [ ] Draft")
}

func TestShowCommand_JSON(t *testing.T) {
	c, _ := newTestContainer(t, testTask("abc123", "Write report"))

	out, err := run(c, "show", "abc123", "--json")
	require.NoError(t, err)

	var got domain.Task
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "abc123", got.ID)
	assert.Equal(t, "Write report", got.Text)
}

func TestShowCommand_NotFound(t *testing.T) {
	c, _ := newTestContainer(t)

	_, err := run(c, "show", "abc")

	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
