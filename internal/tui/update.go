package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/taskflow/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.categories = msg.Categories
		m.board = msg.Board
		m.stats = msg.Stats
		m.clampCursor()
		return m, nil

	case MsgTaskChanged:
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmID = ""
		m.notice = msg.Notice
		return m, m.loadTasks()

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmID = ""
		return m, nil

	case MsgClearError:
		m.err = nil
		return m, nil
	}

	// Forward cursor blink and other component messages to the active input.
	if m.mode.IsInputMode() {
		return m.updateActiveInput(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, whatever the mode
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd, ModeSearch, ModeSubtask:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		if m.query.Search != "" {
			m.query.Search = ""
			m.searchInput.Reset()
			return m, m.loadTasks()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		m.moveColumn(-1)
		return m, nil

	case key.Matches(msg, m.keys.Right):
		m.moveColumn(1)
		return m, nil

	case key.Matches(msg, m.keys.SwitchView):
		if m.view == ViewList {
			m.view = ViewBoard
		} else {
			m.view = ViewList
		}
		m.clampCursor()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAdd
		m.textInput.Reset()
		m.textInput.Placeholder = "What needs to be done?"
		m.textInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Filter):
		m.query.Filter = cycle(domain.AllStatusFilters(), normalizeFilter(m.query.Filter))
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Sort):
		m.query.Sort = cycle(domain.AllSortModes(), normalizeSort(m.query.Sort))
		m.cursor = 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Category):
		m.query.Category = cycle(m.categoryChoices(), m.currentCategory())
		m.cursor, m.row = 0, 0
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Clear):
		if m.stats.Completed == 0 {
			m.notice = "No completed tasks"
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
		return m, nil
	}

	// The remaining keys act on the selected task.
	task, ok := m.SelectedTask()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmRemove
		m.confirmID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Subtask):
		m.mode = ModeSubtask
		m.confirmID = task.ID
		m.textInput.Reset()
		m.textInput.Placeholder = "Subtask for " + task.Text
		m.textInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Priority):
		current := task.Priority
		if !current.IsValid() {
			current = domain.PriorityLow
		}
		return m, m.setPriority(task.ID, cycle(domain.AllPriorities(), current))

	case key.Matches(msg, m.keys.StatusNext):
		return m, m.setStatus(task.ID, task.Status.Next())

	case key.Matches(msg, m.keys.StatusPrev):
		return m, m.setStatus(task.ID, task.Status.Prev())
	}

	return m, nil
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		mode := m.mode
		m.exitInput()
		if mode == ModeSearch && m.query.Search != "" {
			m.query.Search = ""
			return m, m.loadTasks()
		}
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		mode := m.mode
		text := strings.TrimSpace(m.textInput.Value())
		target := m.confirmID
		m.exitInput()
		switch mode {
		case ModeAdd:
			if text == "" {
				return m, nil
			}
			return m, m.addTask(text)
		case ModeSubtask:
			if text == "" {
				return m, nil
			}
			return m, m.addSubtask(target, text)
		case ModeSearch:
			// Search is applied while typing.
			return m, nil
		case ModeNormal, ModeConfirm, ModeHelp:
		}
		return m, nil
	}

	return m.updateActiveInput(msg)
}

// updateActiveInput forwards a message to the focused text input.
// The search query follows the input as the user types.
func (m *Model) updateActiveInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.mode == ModeSearch {
		m.searchInput, cmd = m.searchInput.Update(msg)
		if search := m.searchInput.Value(); search != m.query.Search {
			m.query.Search = search
			m.cursor, m.row = 0, 0
			return m, tea.Batch(cmd, m.loadTasks())
		}
		return m, cmd
	}
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) exitInput() {
	m.mode = ModeNormal
	m.confirmID = ""
	m.textInput.Blur()
	m.textInput.Reset()
	m.searchInput.Blur()
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Confirm) {
		action, id := m.confirmAction, m.confirmID
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.confirmID = ""
		switch action {
		case ConfirmRemove:
			return m, m.removeTask(id)
		case ConfirmClear:
			return m, m.clearCompleted()
		case ConfirmNone:
		}
		return m, nil
	}

	// Any other key cancels.
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	m.confirmID = ""
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.view == ViewBoard {
		if m.column < len(m.board.Columns) {
			m.row = clamp(m.row+delta, len(m.board.Columns[m.column].Tasks))
		}
		return
	}
	m.cursor = clamp(m.cursor+delta, len(m.tasks))
}

func (m *Model) moveColumn(delta int) {
	if m.view != ViewBoard || len(m.board.Columns) == 0 {
		return
	}
	m.column = clamp(m.column+delta, len(m.board.Columns))
	m.row = clamp(m.row, len(m.board.Columns[m.column].Tasks))
}

// categoryChoices returns "All" followed by the known categories.
func (m *Model) categoryChoices() []string {
	choices := make([]string, 0, len(m.categories)+1)
	choices = append(choices, domain.CategoryAll)
	for _, c := range m.categories {
		if c != domain.CategoryAll {
			choices = append(choices, c)
		}
	}
	return choices
}

func (m *Model) currentCategory() string {
	if m.query.Category == "" {
		return domain.CategoryAll
	}
	return m.query.Category
}

func normalizeFilter(f domain.StatusFilter) domain.StatusFilter {
	if f == "" {
		return domain.FilterAll
	}
	return f
}

func normalizeSort(s domain.SortMode) domain.SortMode {
	if s == "" {
		return domain.SortDate
	}
	return s
}
