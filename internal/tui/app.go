package tui

import (
	"context"
	"fmt"
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskflow/internal/app"
	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	tasks      []domain.Task
	categories []string
	board      domain.Board
	notice     string
	confirmID  string

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	query       domain.Query
	stats       domain.Stats
	textInput   textinput.Model
	searchInput textinput.Model

	// Numeric state (smaller types last)
	mode          Mode
	view          ViewMode
	confirmAction ConfirmAction
	cursor        int // Row in the list view
	column        int // Column in the board view
	row           int // Row within the board column
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
// The initial query comes from the [view] section of the configuration.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	si := textinput.New()
	si.Placeholder = "Search text or tags..."
	si.CharLimit = 100

	query := domain.Query{Filter: domain.FilterAll, Sort: domain.SortDate, Category: domain.CategoryAll}
	if c.AppConfig != nil {
		if q, err := c.AppConfig.DefaultQuery(); err == nil {
			query = q
		}
	}

	return &Model{
		container:   c,
		mode:        ModeNormal,
		view:        ViewList,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		query:       query,
		textInput:   ti,
		searchInput: si,
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, c *app.Container) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(c), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that re-runs the pipeline over the store.
func (m *Model) loadTasks() tea.Cmd {
	query := m.query
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Query: query})
		if err != nil {
			return MsgError{Err: err}
		}
		board, err := m.container.ShowBoardUseCase().Execute(ctx, usecase.ShowBoardInput{
			Category: query.Category,
			Search:   query.Search,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{
			Tasks:      out.Tasks,
			Categories: out.Categories,
			Board:      board.Board,
			Stats:      out.Stats,
		}
	}
}

// SelectedTask returns the task under the cursor in the current view.
func (m *Model) SelectedTask() (domain.Task, bool) {
	if m.view == ViewBoard {
		if m.column < 0 || m.column >= len(m.board.Columns) {
			return domain.Task{}, false
		}
		tasks := m.board.Columns[m.column].Tasks
		if m.row < 0 || m.row >= len(tasks) {
			return domain.Task{}, false
		}
		return tasks[m.row], true
	}
	if m.cursor < 0 || m.cursor >= len(m.tasks) {
		return domain.Task{}, false
	}
	return m.tasks[m.cursor], true
}

// clampCursor keeps the cursors inside the loaded data.
func (m *Model) clampCursor() {
	m.cursor = clamp(m.cursor, len(m.tasks))
	if len(m.board.Columns) == 0 {
		m.column, m.row = 0, 0
		return
	}
	m.column = clamp(m.column, len(m.board.Columns))
	m.row = clamp(m.row, len(m.board.Columns[m.column].Tasks))
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// cycle returns the element after current in values, wrapping around.
func cycle[T comparable](values []T, current T) T {
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

// toggleTask returns a command that flips the completion flag of a task.
func (m *Model) toggleTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(
			context.Background(),
			usecase.ToggleTaskInput{TaskRef: id},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Changed {
			return MsgTaskChanged{Notice: "No change"}
		}
		state := "active"
		if out.Task.Completed {
			state = "completed"
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Marked %q %s", out.Task.Text, state)}
	}
}

// removeTask returns a command that removes a task.
func (m *Model) removeTask(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.RemoveTaskUseCase().Execute(
			context.Background(),
			usecase.RemoveTaskInput{TaskRef: id},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Removed {
			return MsgTaskChanged{Notice: "No change"}
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Removed %q", out.Task.Text)}
	}
}

// addTask returns a command that adds a task with the configured defaults.
func (m *Model) addTask(text string) tea.Cmd {
	input := usecase.AddTaskInput{Text: text}
	// New tasks land in the category being viewed.
	if m.query.Category != "" && m.query.Category != domain.CategoryAll {
		input.Category = m.query.Category
	}
	if m.view == ViewBoard && m.column < len(m.board.Columns) {
		input.Status = m.board.Columns[m.column].Status
	}
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), input)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Added {
			return MsgTaskChanged{}
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Added %q", out.Task.Text)}
	}
}

// addSubtask returns a command that appends a subtask to a task.
func (m *Model) addSubtask(id, text string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddSubtaskUseCase().Execute(
			context.Background(),
			usecase.AddSubtaskInput{TaskRef: id, Text: text},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Added {
			return MsgTaskChanged{}
		}
		done, total := out.Task.SubtaskProgress()
		return MsgTaskChanged{Notice: fmt.Sprintf("Added subtask to %q (%d/%d)", out.Task.Text, done, total)}
	}
}

// setStatus returns a command that moves a task to another column.
func (m *Model) setStatus(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.SetStatusUseCase().Execute(
			context.Background(),
			usecase.SetStatusInput{TaskRef: id, Status: status},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Changed {
			return MsgTaskChanged{Notice: "No change"}
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Moved %q to %s", out.Task.Text, out.Task.Status.Display())}
	}
}

// setPriority returns a command that changes the priority of a task.
func (m *Model) setPriority(id string, p domain.Priority) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EditTaskUseCase().Execute(
			context.Background(),
			usecase.EditTaskInput{TaskRef: id, Patch: domain.TaskPatch{Priority: &p}},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		if !out.Changed {
			return MsgTaskChanged{Notice: "No change"}
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Priority of %q is now %s", out.Task.Text, out.Task.Priority)}
	}
}

// clearCompleted returns a command that removes every completed task.
func (m *Model) clearCompleted() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ClearCompletedUseCase().Execute(
			context.Background(),
			usecase.ClearCompletedInput{},
		)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskChanged{Notice: fmt.Sprintf("Cleared %d completed task(s)", out.Removed)}
	}
}
