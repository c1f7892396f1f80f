package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestShowLogs_Execute_Global(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logContent := "line1\nline2\nline3\n"
	writeLog(t, domain.GlobalLogPath(dataDir), logContent)
	deps := newTestDeps()
	uc := NewShowLogs(deps.store, deps.logger, dataDir)

	// Execute
	out, err := uc.Execute(context.Background(), ShowLogsInput{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalLogPath(dataDir), out.LogPath)
	assert.Equal(t, logContent, out.Content)
}

func TestShowLogs_Execute_TaskPrefix(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	writeLog(t, domain.TaskLogPath(dataDir, "abc123"), "task log\n")
	deps := newTestDeps(task("abc123", "Logged"))
	uc := NewShowLogs(deps.store, deps.logger, dataDir)

	// Execute
	out, err := uc.Execute(context.Background(), ShowLogsInput{TaskRef: "abc"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "task log\n", out.Content)
}

func TestShowLogs_Execute_RemovedTask(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	writeLog(t, domain.TaskLogPath(dataDir, "gone"), "removed\n")
	deps := newTestDeps()
	uc := NewShowLogs(deps.store, deps.logger, dataDir)

	// Execute
	out, err := uc.Execute(context.Background(), ShowLogsInput{TaskRef: "gone"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "removed\n", out.Content)
}

func TestShowLogs_Execute_LastLines(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	writeLog(t, domain.GlobalLogPath(dataDir), "line1\nline2\nline3\nline4\nline5\n")
	deps := newTestDeps()
	uc := NewShowLogs(deps.store, deps.logger, dataDir)

	// Execute
	out, err := uc.Execute(context.Background(), ShowLogsInput{Lines: 2})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "line4\nline5\n", out.Content)
}

func TestShowLogs_Execute_NoLogFile(t *testing.T) {
	// Setup
	deps := newTestDeps()
	uc := NewShowLogs(deps.store, deps.logger, t.TempDir())

	// Execute
	_, err := uc.Execute(context.Background(), ShowLogsInput{})

	// Assert
	assert.ErrorIs(t, err, domain.ErrNoLogs)
}
