package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/testutil"
)

var testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

// task returns an active todo task created age before testNow.
func task(id, text string, age time.Duration) domain.Task {
	return domain.Task{
		ID:        id,
		Text:      text,
		Priority:  domain.PriorityMedium,
		Category:  "Work",
		Status:    domain.StatusTodo,
		Tags:      []string{},
		Subtasks:  []domain.Subtask{},
		CreatedAt: testNow.Add(-age),
	}
}

// newTestModel builds a sized model over an in-memory store and loads it.
func newTestModel(t *testing.T, tasks ...domain.Task) (*Model, *testutil.MockTaskStore) {
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
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	settle(m, m.Init())
	return m, store
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press sends a key and returns the resulting command without running it.
func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

// pressAndSettle sends a key and feeds the produced messages back.
func pressAndSettle(m *Model, k string) {
	settle(m, press(m, k))
}

// settle runs cmd and feeds its taskflow messages back into the model
// until no further taskflow message is produced.
func settle(m *Model, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if _, ok := msg.(Msg); !ok {
			return
		}
		_, cmd = m.Update(msg)
	}
}
