package tui

import "github.com/runoshun/taskflow/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the pipeline has been re-run over the store.
type MsgTasksLoaded struct {
	Tasks      []domain.Task // Projection for the list view
	Categories []string
	Board      domain.Board
	Stats      domain.Stats
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskChanged is sent after a mutation finished.
// Notice is shown in the status line until the next key press.
type MsgTaskChanged struct {
	Notice string
}

func (MsgTaskChanged) sealed() {}

// MsgError is sent when an error occurs.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}

// MsgClearError is sent to clear the error message.
type MsgClearError struct{}

func (MsgClearError) sealed() {}
