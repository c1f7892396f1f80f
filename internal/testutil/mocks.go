// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sync"
	"time"

	"github.com/runoshun/taskflow/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// SequenceIDs is a deterministic domain.IDGenerator producing "1", "2", ...
type SequenceIDs struct {
	mu sync.Mutex
	n  int
}

// NewID returns the next number in the sequence.
func (s *SequenceIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	return fmt.Sprintf("%d", s.n)
}

// MockTaskStore is an in-memory test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	Tasks     []domain.Task
	LoadErr   error
	SaveErr   error
	SaveCalls int
}

// NewMockTaskStore creates a store holding copies of the given tasks.
func NewMockTaskStore(tasks ...domain.Task) *MockTaskStore {
	m := &MockTaskStore{}
	for _, t := range tasks {
		m.Tasks = append(m.Tasks, t.Clone())
	}
	return m
}

// Load returns copies of the stored tasks.
func (m *MockTaskStore) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	result := make([]domain.Task, len(m.Tasks))
	for i, t := range m.Tasks {
		result[i] = t.Clone()
	}
	return result, nil
}

// Save replaces the stored tasks.
func (m *MockTaskStore) Save(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SaveCalls++
	m.Tasks = make([]domain.Task, len(tasks))
	for i, t := range tasks {
		m.Tasks[i] = t.Clone()
	}
	return nil
}

// Find returns the stored task with the given id.
func (m *MockTaskStore) Find(id string) (domain.Task, bool) {
	for _, t := range m.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return domain.Task{}, false
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	InitErr     error
	Initialized bool
}

// Initialize marks the store as initialized.
func (m *MockStoreInitializer) Initialize() (bool, error) {
	if m.InitErr != nil {
		return false, m.InitErr
	}
	created := !m.Initialized
	m.Initialized = true
	return created, nil
}

// IsInitialized returns whether Initialize was called.
func (m *MockStoreInitializer) IsInitialized() bool {
	return m.Initialized
}

// MockSnapshotHistory is a test double for domain.SnapshotHistory.
type MockSnapshotHistory struct {
	Err       error
	Snapshots []domain.SnapshotInfo
}

// History returns up to limit snapshots.
func (m *MockSnapshotHistory) History(limit int) ([]domain.SnapshotInfo, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && limit < len(m.Snapshots) {
		return m.Snapshots[:limit], nil
	}
	return m.Snapshots, nil
}

// LogEntry is one entry recorded by MockLogger.
type LogEntry struct {
	Level    string
	TaskID   string
	Category string
	Msg      string
}

// MockLogger records log entries.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, taskID, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Info records an info entry.
func (m *MockLogger) Info(taskID, category, msg string) { m.record("INFO", taskID, category, msg) }

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID, category, msg string) { m.record("DEBUG", taskID, category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID, category, msg string) { m.record("WARN", taskID, category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(taskID, category, msg string) { m.record("ERROR", taskID, category, msg) }

// HasEntry reports whether an entry with the level and category was recorded.
func (m *MockLogger) HasEntry(level, category string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Level == level && e.Category == category {
			return true
		}
	}
	return false
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal returns the configured config.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr     error
	Local       domain.ConfigInfo
	Global      domain.ConfigInfo
	LocalInits  int
	GlobalInits int
}

// GetLocalConfigInfo returns the configured local info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo { return m.Local }

// GetGlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.Global }

// InitLocalConfig records the call and marks the local file as existing.
func (m *MockConfigManager) InitLocalConfig(cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Local.Exists {
		return domain.ErrConfigExists
	}
	m.LocalInits++
	m.Local.Exists = true
	m.Local.Content = domain.RenderConfigTemplate(cfg)
	return nil
}

// InitGlobalConfig records the call and marks the global file as existing.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) error {
	if m.InitErr != nil {
		return m.InitErr
	}
	if m.Global.Exists {
		return domain.ErrConfigExists
	}
	m.GlobalInits++
	m.Global.Exists = true
	m.Global.Content = domain.RenderConfigTemplate(cfg)
	return nil
}

// Ensure mocks implement their ports.
var (
	_ domain.Clock            = (*MockClock)(nil)
	_ domain.IDGenerator      = (*SequenceIDs)(nil)
	_ domain.TaskStore        = (*MockTaskStore)(nil)
	_ domain.StoreInitializer = (*MockStoreInitializer)(nil)
	_ domain.SnapshotHistory  = (*MockSnapshotHistory)(nil)
	_ domain.Logger           = (*MockLogger)(nil)
	_ domain.ConfigLoader     = (*MockConfigLoader)(nil)
	_ domain.ConfigManager    = (*MockConfigManager)(nil)
)
