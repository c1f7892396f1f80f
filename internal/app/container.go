// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/infra/config"
	"github.com/runoshun/taskflow/internal/infra/crypto"
	"github.com/runoshun/taskflow/internal/infra/gitstore"
	"github.com/runoshun/taskflow/internal/infra/jsonstore"
	"github.com/runoshun/taskflow/internal/infra/logging"
	"github.com/runoshun/taskflow/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	DataDir   string // Data directory holding the store, config and logs
	StorePath string // Path to tasks.json
	GitDir    string // Path to the bare repository used by the git store
}

// newConfig creates a new Config rooted at dataDir.
func newConfig(dataDir string) Config {
	return Config{
		DataDir:   dataDir,
		StorePath: domain.TasksStorePath(dataDir),
		GitDir:    domain.GitStoreDir(dataDir),
	}
}

// ResolveDataDir picks the data directory: the explicit value if set,
// then $TASKFLOW_DIR, then $XDG_DATA_HOME/taskflow, then ~/.local/share/taskflow.
func ResolveDataDir(explicit string) (string, error) {
	if explicit != "" {
		return filepath.Abs(explicit)
	}
	if dir := os.Getenv(domain.DataDirEnv); dir != "" {
		return filepath.Abs(dir)
	}
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, domain.AppDirName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", domain.AppDirName), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store            domain.TaskStore
	StoreInitializer domain.StoreInitializer
	History          domain.SnapshotHistory // nil unless the git store is used
	Clock            domain.Clock
	IDs              domain.IDGenerator
	ConfigLoader     domain.ConfigLoader
	ConfigManager    domain.ConfigManager
	TaskLogger       domain.Logger

	// Pointer fields
	AppConfig  *domain.Config
	Logger     *slog.Logger
	fileLogger *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given data directory.
func New(dataDir string) (*Container, error) {
	cfg := newConfig(dataDir)

	// Create process logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	// Load app config to determine store type
	configLoader := config.NewLoader(cfg.DataDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		logger.Warn("using default config", "error", err)
		appConfig = domain.NewDefaultConfig()
	}
	for _, w := range appConfig.Warnings {
		logger.Warn(w)
	}

	// Create task store based on config
	// Default is "json" store; use "git" only if explicitly specified
	c := &Container{
		Clock:         domain.RealClock{},
		IDs:           domain.UUIDGenerator{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(cfg.DataDir),
		AppConfig:     appConfig,
		Logger:        logger,
		Config:        cfg,
	}
	if appConfig.Tasks.Store == domain.StoreGit {
		sealer, err := newSealer(appConfig)
		if err != nil {
			return nil, err
		}
		namespace := appConfig.Tasks.Namespace
		if namespace == "" {
			namespace = domain.DefaultNamespace
		}
		gitStore, err := gitstore.New(cfg.GitDir, namespace, sealer)
		if err != nil {
			return nil, err
		}
		c.Store = gitStore
		c.StoreInitializer = gitStore
		c.History = gitStore
	} else {
		if appConfig.Tasks.Encrypt {
			logger.Warn("tasks.encrypt is only supported by the git store; ignoring")
		}
		jsonStore := jsonstore.New(cfg.StorePath)
		c.Store = jsonStore
		c.StoreInitializer = jsonStore
	}

	// Create file logger
	c.fileLogger = logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))
	c.TaskLogger = c.fileLogger

	return c, nil
}

// newSealer builds the snapshot sealer when encryption is enabled.
func newSealer(cfg *domain.Config) (*crypto.Sealer, error) {
	if !cfg.Tasks.Encrypt {
		return nil, nil
	}
	key := os.Getenv(domain.EncryptKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%w: tasks.encrypt is set but %s is empty", domain.ErrInvalidEncryptKey, domain.EncryptKeyEnv)
	}
	sealer, err := crypto.New(key)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidEncryptKey, err)
	}
	return sealer, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskStore, storeInit domain.StoreInitializer, clock domain.Clock, ids domain.IDGenerator, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Container{
		Store:            store,
		StoreInitializer: storeInit,
		Clock:            clock,
		IDs:              ids,
		TaskLogger:       domain.NopLogger{},
		AppConfig:        appConfig,
		Logger:           logger,
		Config:           cfg,
	}
}

// Close releases open log files.
func (c *Container) Close() error {
	if c.fileLogger == nil {
		return nil
	}
	return c.fileLogger.Close()
}

// UseCase factory methods

// InitStoreUseCase returns a new InitStore use case.
func (c *Container) InitStoreUseCase() *usecase.InitStore {
	return usecase.NewInitStore(c.StoreInitializer, c.Store, c.IDs, c.Clock, c.TaskLogger)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.IDs, c.Clock, c.TaskLogger, c.AppConfig)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Store, c.IDs, c.Clock, c.TaskLogger)
}

// RemoveTaskUseCase returns a new RemoveTask use case.
func (c *Container) RemoveTaskUseCase() *usecase.RemoveTask {
	return usecase.NewRemoveTask(c.Store, c.TaskLogger)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store, c.TaskLogger)
}

// AddSubtaskUseCase returns a new AddSubtask use case.
func (c *Container) AddSubtaskUseCase() *usecase.AddSubtask {
	return usecase.NewAddSubtask(c.Store, c.IDs, c.TaskLogger)
}

// ToggleSubtaskUseCase returns a new ToggleSubtask use case.
func (c *Container) ToggleSubtaskUseCase() *usecase.ToggleSubtask {
	return usecase.NewToggleSubtask(c.Store, c.TaskLogger)
}

// ClearCompletedUseCase returns a new ClearCompleted use case.
func (c *Container) ClearCompletedUseCase() *usecase.ClearCompleted {
	return usecase.NewClearCompleted(c.Store, c.TaskLogger)
}

// SetStatusUseCase returns a new SetStatus use case.
func (c *Container) SetStatusUseCase() *usecase.SetStatus {
	return usecase.NewSetStatus(c.Store, c.TaskLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store, c.Clock, c.TaskLogger, c.AppConfig)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Store, c.Clock, c.TaskLogger)
}

// ShowStatsUseCase returns a new ShowStats use case.
func (c *Container) ShowStatsUseCase() *usecase.ShowStats {
	return usecase.NewShowStats(c.Store, c.Clock, c.TaskLogger)
}

// ShowBoardUseCase returns a new ShowBoard use case.
func (c *Container) ShowBoardUseCase() *usecase.ShowBoard {
	return usecase.NewShowBoard(c.Store, c.TaskLogger)
}

// ListTagsUseCase returns a new ListTags use case.
func (c *Container) ListTagsUseCase() *usecase.ListTags {
	return usecase.NewListTags(c.Store, c.TaskLogger)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Store, c.IDs, c.Clock, c.TaskLogger, c.AppConfig)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Store, c.Clock, c.TaskLogger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowLogsUseCase returns a new ShowLogs use case.
func (c *Container) ShowLogsUseCase() *usecase.ShowLogs {
	return usecase.NewShowLogs(c.Store, c.TaskLogger, c.Config.DataDir)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.History)
}
