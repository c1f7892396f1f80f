// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskflow/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	dataDir       string // Path to the taskflow data directory
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskflow)
}

// NewLoader creates a new Loader.
func NewLoader(dataDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: DefaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(dataDir, globalConfDir string) *Loader {
	return &Loader{
		dataDir:       dataDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (default + global + local).
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	local, err := l.LoadLocal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	// Merge: default <- global <- local (later takes precedence)
	base := domain.NewDefaultConfig()
	if global != nil {
		base = mergeConfigs(base, global)
	}
	if local != nil {
		base = mergeConfigs(base, local)
	}

	if err := base.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// LoadLocal returns only the data directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	return l.loadFile(domain.DataConfigPath(l.dataDir))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}
		switch section {
		case "tasks":
			for k, v := range m {
				switch k {
				case "store":
					if s, ok := v.(string); ok {
						res.Tasks.Store = s
					}
				case "namespace":
					if s, ok := v.(string); ok {
						res.Tasks.Namespace = s
					}
				case "default_category":
					if s, ok := v.(string); ok {
						res.Tasks.DefaultCategory = s
					}
				case "default_priority":
					if s, ok := v.(string); ok {
						res.Tasks.DefaultPriority = s
					}
				case "categories":
					res.Tasks.Categories = toStrings(v)
				case "encrypt":
					if b, ok := v.(bool); ok {
						res.Tasks.Encrypt = b
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
				}
			}
		case "view":
			for k, v := range m {
				s, _ := v.(string)
				switch k {
				case "filter":
					res.View.Filter = s
				case "sort":
					res.View.Sort = s
				case "category":
					res.View.Category = s
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [view]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// toStrings converts a TOML array into a string slice, skipping non-strings.
func toStrings(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Tasks:    base.Tasks,
		View:     base.View,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Tasks.Store != "" {
		result.Tasks.Store = override.Tasks.Store
	}
	if override.Tasks.Namespace != "" {
		result.Tasks.Namespace = override.Tasks.Namespace
	}
	if override.Tasks.DefaultCategory != "" {
		result.Tasks.DefaultCategory = override.Tasks.DefaultCategory
	}
	if override.Tasks.DefaultPriority != "" {
		result.Tasks.DefaultPriority = override.Tasks.DefaultPriority
	}
	if override.Tasks.Categories != nil {
		result.Tasks.Categories = override.Tasks.Categories
	}
	if override.Tasks.Encrypt {
		result.Tasks.Encrypt = override.Tasks.Encrypt
	}
	if override.View.Filter != "" {
		result.View.Filter = override.View.Filter
	}
	if override.View.Sort != "" {
		result.View.Sort = override.View.Sort
	}
	if override.View.Category != "" {
		result.View.Category = override.View.Category
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
