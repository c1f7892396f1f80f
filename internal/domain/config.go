package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Tasks    TasksConfig `toml:"tasks"`
	View     ViewConfig  `toml:"view"`
	Log      LogConfig   `toml:"log"`
}

// TasksConfig holds settings for task storage and defaults from [tasks] section.
type TasksConfig struct {
	Store           string   `toml:"store,omitempty"`            // Storage backend: "json" (default) or "git"
	Namespace       string   `toml:"namespace,omitempty"`        // Git namespace for refs (default: "taskflow")
	DefaultCategory string   `toml:"default_category,omitempty"` // Category for new tasks
	DefaultPriority string   `toml:"default_priority,omitempty"` // Priority for new tasks
	Categories      []string `toml:"categories,omitempty"`       // Categories offered by the TUI
	Encrypt         bool     `toml:"encrypt,omitempty"`          // Encrypt git snapshots (key from TASKFLOW_KEY)
}

// ViewConfig holds the default projection from [view] section.
type ViewConfig struct {
	Filter   string `toml:"filter,omitempty"`   // all, active, completed, overdue
	Sort     string `toml:"sort,omitempty"`     // date, priority, category
	Category string `toml:"category,omitempty"` // Category filter, "All" for none
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Store backends.
const (
	StoreJSON = "json"
	StoreGit  = "git"
)

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultNamespace = "taskflow"
	DefaultCategory  = "Personal"
)

// DefaultCategories returns the built-in category list.
func DefaultCategories() []string {
	return []string{"Personal", "Work", "Shopping", "Health", "Learning"}
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{
			Store:           StoreJSON,
			Namespace:       DefaultNamespace,
			DefaultCategory: DefaultCategory,
			DefaultPriority: string(PriorityMedium),
			Categories:      DefaultCategories(),
		},
		View: ViewConfig{
			Filter:   string(FilterAll),
			Sort:     string(SortDate),
			Category: CategoryAll,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Tasks.Store {
	case "", StoreJSON, StoreGit:
	default:
		return fmt.Errorf("%w: %q (valid: json, git)", ErrInvalidStoreType, c.Tasks.Store)
	}
	if c.Tasks.DefaultPriority != "" {
		if _, err := ParsePriority(c.Tasks.DefaultPriority); err != nil {
			return fmt.Errorf("tasks.default_priority: %w", err)
		}
	}
	if _, err := c.DefaultQuery(); err != nil {
		return err
	}
	return nil
}

// DefaultQuery returns the projection configured in [view].
func (c *Config) DefaultQuery() (Query, error) {
	filter, err := ParseStatusFilter(c.View.Filter)
	if err != nil {
		return Query{}, fmt.Errorf("view.filter: %w", err)
	}
	sort, err := ParseSortMode(c.View.Sort)
	if err != nil {
		return Query{}, fmt.Errorf("view.sort: %w", err)
	}
	return Query{Filter: filter, Sort: sort, Category: c.View.Category}, nil
}

// NewTaskPriority returns the priority applied to tasks added without one.
func (c *Config) NewTaskPriority() Priority {
	p, err := ParsePriority(c.Tasks.DefaultPriority)
	if err != nil {
		return PriorityMedium
	}
	return p
}

// NewTaskCategory returns the category applied to tasks added without one.
func (c *Config) NewTaskCategory() string {
	if c.Tasks.DefaultCategory == "" {
		return DefaultCategory
	}
	return c.Tasks.DefaultCategory
}

// Directory and file names for taskflow.
const (
	AppDirName     = "taskflow"    // Directory name under XDG base directories
	ConfigFileName = "config.toml" // Config file name
	EncryptKeyEnv  = "TASKFLOW_KEY"
	DataDirEnv     = "TASKFLOW_DIR"
)

// DataConfigPath returns the local config path inside a data directory.
func DataConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// GlobalConfigDir returns the global taskflow config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the global config path.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// templateData holds all data for rendering the config template.
type templateData struct {
	Store           string
	Namespace       string
	DefaultCategory string
	DefaultPriority string
	Categories      string
	Filter          string
	Sort            string
	LogLevel        string
}

// RenderConfigTemplate renders the commented config template from cfg.
func RenderConfigTemplate(cfg *Config) string {
	quoted := make([]string, len(cfg.Tasks.Categories))
	for i, c := range cfg.Tasks.Categories {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	data := templateData{
		Store:           cfg.Tasks.Store,
		Namespace:       cfg.Tasks.Namespace,
		DefaultCategory: cfg.Tasks.DefaultCategory,
		DefaultPriority: cfg.Tasks.DefaultPriority,
		Categories:      strings.Join(quoted, ", "),
		Filter:          cfg.View.Filter,
		Sort:            cfg.View.Sort,
		LogLevel:        cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}
