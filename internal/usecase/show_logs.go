package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/usecase/shared"
)

// ShowLogsInput contains the parameters for showing logs.
type ShowLogsInput struct {
	TaskRef string // Task id or prefix (empty = global log)
	Lines   int    // Number of lines to display from the end (0 = all)
}

// ShowLogsOutput contains the result of showing logs.
type ShowLogsOutput struct {
	LogPath string // Path to the log file
	Content string // Log file content
}

// ShowLogs is the use case for viewing the global or a task log.
type ShowLogs struct {
	store   domain.TaskStore
	logger  domain.Logger
	dataDir string
}

// NewShowLogs creates a new ShowLogs use case.
func NewShowLogs(store domain.TaskStore, logger domain.Logger, dataDir string) *ShowLogs {
	return &ShowLogs{
		store:   store,
		logger:  logger,
		dataDir: dataDir,
	}
}

// Execute reads and returns the log content.
// A full id of a removed task still finds its log.
func (uc *ShowLogs) Execute(_ context.Context, in ShowLogsInput) (*ShowLogsOutput, error) {
	logPath := domain.GlobalLogPath(uc.dataDir)
	if ref := strings.TrimSpace(in.TaskRef); ref != "" {
		col, err := shared.LoadCollection(uc.store, nil, nil, uc.logger)
		if err != nil {
			return nil, err
		}
		id, ok, err := shared.ResolveTaskID(col, ref)
		if err != nil {
			return nil, err
		}
		if !ok {
			id = ref
		}
		logPath = domain.TaskLogPath(uc.dataDir, id)
	}

	content, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoLogs, logPath)
		}
		return nil, fmt.Errorf("read log file: %w", err)
	}

	// If lines is specified, get only the last N lines
	result := string(content)
	if in.Lines > 0 {
		lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
		if len(lines) > in.Lines {
			lines = lines[len(lines)-in.Lines:]
		}
		result = strings.Join(lines, "\n") + "\n"
	}

	return &ShowLogsOutput{
		LogPath: logPath,
		Content: result,
	}, nil
}
