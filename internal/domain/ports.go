package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	// Returns true if the store was created by this call.
	Initialize() (bool, error)

	// IsInitialized reports whether the store exists.
	IsInitialized() bool
}

// TaskStore persists the whole collection as one snapshot.
type TaskStore interface {
	// Load returns the last saved snapshot, or nil if nothing was saved yet.
	// A snapshot that cannot be decoded yields an error wrapping ErrSnapshotCorrupted.
	Load() ([]Task, error)

	// Save overwrites the snapshot.
	Save(tasks []Task) error
}

// SnapshotHistory lists earlier snapshots of a store that keeps them.
type SnapshotHistory interface {
	// History returns up to limit snapshots, newest first. limit <= 0 means no limit.
	History(limit int) ([]SnapshotInfo, error)
}

// SnapshotInfo describes one saved snapshot.
type SnapshotInfo struct {
	When    time.Time
	Hash    string
	Message string
	Tasks   int
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (default + global + local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager provides config file management operations.
type ConfigManager interface {
	// GetLocalConfigInfo returns information about the data directory config file.
	GetLocalConfigInfo() ConfigInfo

	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// InitLocalConfig writes a template config into the data directory.
	InitLocalConfig(cfg *Config) error

	// InitGlobalConfig writes a template config into the global config directory.
	InitGlobalConfig(cfg *Config) error
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator produces identifiers for tasks and subtasks.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator implements IDGenerator with random UUIDs.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// Logger writes operational log lines.
// taskID is empty for entries not tied to a task.
type Logger interface {
	Info(taskID, category, msg string)
	Debug(taskID, category, msg string)
	Warn(taskID, category, msg string)
	Error(taskID, category, msg string)
}

// NopLogger discards all log entries.
type NopLogger struct{}

func (NopLogger) Info(string, string, string)  {}
func (NopLogger) Debug(string, string, string) {}
func (NopLogger) Warn(string, string, string)  {}
func (NopLogger) Error(string, string, string) {}
