package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		want string
		mode Mode
	}{
		{"normal", ModeNormal},
		{"add", ModeAdd},
		{"search", ModeSearch},
		{"subtask", ModeSubtask},
		{"confirm", ModeConfirm},
		{"help", ModeHelp},
		{"unknown", Mode(99)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.String())
	}
}

func TestMode_IsInputMode(t *testing.T) {
	assert.True(t, ModeAdd.IsInputMode())
	assert.True(t, ModeSearch.IsInputMode())
	assert.True(t, ModeSubtask.IsInputMode())
	assert.False(t, ModeNormal.IsInputMode())
	assert.False(t, ModeConfirm.IsInputMode())
	assert.False(t, ModeHelp.IsInputMode())
}

func TestViewMode_String(t *testing.T) {
	assert.Equal(t, "list", ViewList.String())
	assert.Equal(t, "board", ViewBoard.String())
}

func TestConfirmAction_String(t *testing.T) {
	assert.Equal(t, "", ConfirmNone.String())
	assert.Equal(t, "remove", ConfirmRemove.String())
	assert.Equal(t, "clear completed", ConfirmClear.String())
}
