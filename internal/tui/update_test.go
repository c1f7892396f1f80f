package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskflow/internal/domain"
)

func TestModel_InitLoadsProjection(t *testing.T) {
	done := task("b2", "Water plants", 2*time.Hour)
	done.Completed = true
	m, _ := newTestModel(t, task("a1", "Write report", time.Hour), done)

	require.Len(t, m.tasks, 2)
	assert.Equal(t, "a1", m.tasks[0].ID)
	assert.Equal(t, 2, m.stats.Total)
	assert.Equal(t, 1, m.stats.Completed)
	assert.Equal(t, 50, m.stats.CompletionRate)
	assert.Len(t, m.board.Columns, 4)
}

func TestModel_CursorClamps(t *testing.T) {
	m, _ := newTestModel(t, task("a1", "First", time.Hour), task("b2", "Second", 2*time.Hour))

	press(m, "j")
	press(m, "j")
	press(m, "down")
	assert.Equal(t, 1, m.cursor)

	press(m, "k")
	press(m, "k")
	assert.Equal(t, 0, m.cursor)
}

func TestModel_ToggleSelected(t *testing.T) {
	// Setup
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	// Execute
	pressAndSettle(m, "x")

	// Assert
	got, ok := store.Find("a1")
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.Equal(t, `Marked "Write report" completed`, m.notice)
	assert.Equal(t, 1, m.stats.Completed)
}

func TestModel_ToggleWithSpace(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	pressAndSettle(m, " ")

	got, _ := store.Find("a1")
	assert.True(t, got.Completed)
}

func TestModel_AddTask(t *testing.T) {
	// Setup
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	// Execute
	press(m, "n")
	require.Equal(t, ModeAdd, m.mode)
	press(m, "Buy milk")
	pressAndSettle(m, "enter")

	// Assert
	assert.Equal(t, ModeNormal, m.mode)
	require.Len(t, store.Tasks, 2)
	assert.Equal(t, "Buy milk", store.Tasks[0].Text)
	assert.Equal(t, "Personal", store.Tasks[0].Category)
	assert.Equal(t, "Buy milk", m.tasks[0].Text)
}

func TestModel_AddTask_BlankOrCancelled(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	press(m, "n")
	press(m, "   ")
	assert.Nil(t, press(m, "enter"))
	assert.Equal(t, ModeNormal, m.mode)

	press(m, "n")
	press(m, "Something")
	press(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Empty(t, m.textInput.Value())

	assert.Len(t, store.Tasks, 1)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestModel_AddTask_OnBoardUsesColumn(t *testing.T) {
	m, store := newTestModel(t)

	press(m, "tab")
	press(m, "l")
	press(m, "l")
	press(m, "n")
	press(m, "Review PR")
	pressAndSettle(m, "enter")

	require.Len(t, store.Tasks, 1)
	assert.Equal(t, domain.StatusReview, store.Tasks[0].Status)
}

func TestModel_DeleteRequiresConfirmation(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	// Any key other than y cancels
	press(m, "d")
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmRemove, m.confirmAction)
	assert.Nil(t, press(m, "n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, store.Tasks, 1)

	press(m, "d")
	pressAndSettle(m, "y")
	assert.Empty(t, store.Tasks)
	assert.Empty(t, m.tasks)
	assert.Equal(t, `Removed "Write report"`, m.notice)
}

func TestModel_ClearCompleted(t *testing.T) {
	done := task("b2", "Water plants", 2*time.Hour)
	done.Completed = true
	m, store := newTestModel(t, task("a1", "Write report", time.Hour), done)

	press(m, "C")
	require.Equal(t, ConfirmClear, m.confirmAction)
	pressAndSettle(m, "y")

	require.Len(t, store.Tasks, 1)
	assert.Equal(t, "a1", store.Tasks[0].ID)
	assert.Equal(t, "Cleared 1 completed task(s)", m.notice)
}

func TestModel_ClearCompleted_NothingToClear(t *testing.T) {
	m, _ := newTestModel(t, task("a1", "Write report", time.Hour))

	press(m, "C")

	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "No completed tasks", m.notice)
}

func TestModel_FilterCycles(t *testing.T) {
	done := task("b2", "Water plants", 2*time.Hour)
	done.Completed = true
	m, _ := newTestModel(t, task("a1", "Write report", time.Hour), done)

	pressAndSettle(m, "f")
	assert.Equal(t, domain.FilterActive, m.query.Filter)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "a1", m.tasks[0].ID)

	pressAndSettle(m, "f")
	assert.Equal(t, domain.FilterCompleted, m.query.Filter)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "b2", m.tasks[0].ID)

	pressAndSettle(m, "f")
	assert.Equal(t, domain.FilterOverdue, m.query.Filter)
	assert.Empty(t, m.tasks)
	// Stats always cover the whole collection
	assert.Equal(t, 2, m.stats.Total)

	pressAndSettle(m, "f")
	assert.Equal(t, domain.FilterAll, m.query.Filter)
	assert.Len(t, m.tasks, 2)
}

func TestModel_SortCycles(t *testing.T) {
	low := task("a1", "Low one", time.Hour)
	low.Priority = domain.PriorityLow
	urgent := task("b2", "Urgent one", 2*time.Hour)
	urgent.Priority = domain.PriorityUrgent
	m, _ := newTestModel(t, low, urgent)

	assert.Equal(t, "a1", m.tasks[0].ID)
	pressAndSettle(m, "o")

	assert.Equal(t, domain.SortPriority, m.query.Sort)
	assert.Equal(t, "b2", m.tasks[0].ID)
}

func TestModel_CategoryCycles(t *testing.T) {
	home := task("b2", "Water plants", 2*time.Hour)
	home.Category = "Home"
	m, _ := newTestModel(t, task("a1", "Write report", time.Hour), home)

	require.Contains(t, m.categories, "Home")
	for i := 0; i < len(m.categoryChoices()); i++ {
		pressAndSettle(m, "c")
		if m.query.Category == "Home" {
			break
		}
	}

	require.Equal(t, "Home", m.query.Category)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "b2", m.tasks[0].ID)
	assert.Equal(t, 1, m.board.Stats.Total)
}

func TestModel_SearchWhileTyping(t *testing.T) {
	m, _ := newTestModel(t, task("a1", "Write report", time.Hour), task("b2", "Buy milk", 2*time.Hour))

	press(m, "/")
	require.Equal(t, ModeSearch, m.mode)
	press(m, "milk")
	assert.Equal(t, "milk", m.query.Search)
	settle(m, m.loadTasks())
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "b2", m.tasks[0].ID)

	// enter keeps the search, esc in normal mode clears it
	press(m, "enter")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "milk", m.query.Search)

	pressAndSettle(m, "esc")
	assert.Empty(t, m.query.Search)
	assert.Len(t, m.tasks, 2)
}

func TestModel_BoardMovesCard(t *testing.T) {
	// Setup
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))
	press(m, "tab")
	require.Equal(t, ViewBoard, m.view)

	// Execute
	pressAndSettle(m, "]")

	// Assert
	got, _ := store.Find("a1")
	assert.Equal(t, domain.StatusInProgress, got.Status)
	assert.False(t, got.Completed)
	assert.Len(t, m.board.Columns[1].Tasks, 1)

	// The cursor stays on the column, which is now empty
	_, ok := m.SelectedTask()
	assert.False(t, ok)

	pressAndSettle(m, "l")
	pressAndSettle(m, "[")
	got, _ = store.Find("a1")
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestModel_BoardStatusWrapsAround(t *testing.T) {
	card := task("a1", "Ship it", time.Hour)
	card.Status = domain.StatusDone
	m, store := newTestModel(t, card)

	press(m, "tab")
	for i := 0; i < 3; i++ {
		press(m, "l")
	}
	pressAndSettle(m, "]")

	got, _ := store.Find("a1")
	assert.Equal(t, domain.StatusTodo, got.Status)
}

func TestModel_CyclePriority(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	pressAndSettle(m, "p")

	got, _ := store.Find("a1")
	assert.Equal(t, domain.PriorityLow, got.Priority)

	pressAndSettle(m, "p")
	got, _ = store.Find("a1")
	assert.Equal(t, domain.PriorityUrgent, got.Priority)
}

func TestModel_AddSubtask(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))

	press(m, "t")
	require.Equal(t, ModeSubtask, m.mode)
	press(m, "Outline")
	pressAndSettle(m, "enter")

	got, _ := store.Find("a1")
	require.Len(t, got.Subtasks, 1)
	assert.Equal(t, "Outline", got.Subtasks[0].Text)
	assert.Equal(t, `Added subtask to "Write report" (0/1)`, m.notice)
}

func TestModel_SelectionKeysIgnoredWhenEmpty(t *testing.T) {
	m, store := newTestModel(t)

	assert.Nil(t, press(m, "x"))
	assert.Nil(t, press(m, "d"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, store.SaveCalls)
}

func TestModel_SaveErrorIsShown(t *testing.T) {
	m, store := newTestModel(t, task("a1", "Write report", time.Hour))
	store.SaveErr = assert.AnError

	pressAndSettle(m, "x")

	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, assert.AnError)

	// esc clears the error
	press(m, "esc")
	assert.NoError(t, m.err)
}

func TestModel_HelpMode(t *testing.T) {
	m, _ := newTestModel(t)

	press(m, "?")
	assert.Equal(t, ModeHelp, m.mode)

	// Keys do nothing while help is open
	press(m, "n")
	assert.Equal(t, ModeHelp, m.mode)

	press(m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	// ctrl+c quits even while typing
	press(m, "n")
	cmd = press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ReloadKeepsCursorInRange(t *testing.T) {
	m, store := newTestModel(t, task("a1", "First", time.Hour), task("b2", "Second", 2*time.Hour))

	press(m, "j")
	require.Equal(t, 1, m.cursor)
	store.Tasks = store.Tasks[:1]
	pressAndSettle(m, "r")

	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.tasks, 1)
}
