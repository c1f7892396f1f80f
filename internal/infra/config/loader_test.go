package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_LocalConfigOnly(t *testing.T) {
	// Setup: create temp directories
	dataDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, dataDir, `
[tasks]
store = "git"
namespace = "home"
default_category = "Work"
default_priority = "high"
categories = ["Work", "Garden"]
encrypt = true

[view]
filter = "active"
sort = "priority"

[log]
level = "debug"
`)

	// Load config
	loader := NewLoaderWithGlobalDir(dataDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	// Verify
	assert.Equal(t, domain.StoreGit, cfg.Tasks.Store)
	assert.Equal(t, "home", cfg.Tasks.Namespace)
	assert.Equal(t, "Work", cfg.NewTaskCategory())
	assert.Equal(t, domain.PriorityHigh, cfg.NewTaskPriority())
	assert.Equal(t, []string{"Work", "Garden"}, cfg.Tasks.Categories)
	assert.True(t, cfg.Tasks.Encrypt)
	assert.Equal(t, "active", cfg.View.Filter)
	assert.Equal(t, "priority", cfg.View.Sort)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_LocalOverridesGlobal(t *testing.T) {
	dataDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
[tasks]
default_category = "Health"

[view]
sort = "category"

[log]
level = "warn"
`)
	writeConfig(t, dataDir, `
[log]
level = "error"
`)

	loader := NewLoaderWithGlobalDir(dataDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "Health", cfg.Tasks.DefaultCategory)
	assert.Equal(t, "category", cfg.View.Sort)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, domain.StoreJSON, cfg.Tasks.Store)
}

func TestLoader_Load_UnknownKeysWarn(t *testing.T) {
	dataDir := t.TempDir()

	writeConfig(t, dataDir, `
color = "blue"

[tasks]
store = "json"
archive = true

[view]
density = "compact"

[agents]
default = "x"
`)

	loader := NewLoaderWithGlobalDir(dataDir, "")
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"unknown key in [tasks]: archive",
		"unknown key in [view]: density",
		"unknown key: color",
		"unknown section: agents",
	}, cfg.Warnings)
}

func TestLoader_Load_InvalidValues(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, `
[view]
filter = "pending"
`)

	loader := NewLoaderWithGlobalDir(dataDir, "")
	_, err := loader.Load()
	require.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestLoader_Load_MalformedTOML(t *testing.T) {
	dataDir := t.TempDir()
	writeConfig(t, dataDir, "[tasks\nstore = ")

	loader := NewLoaderWithGlobalDir(dataDir, "")
	_, err := loader.Load()
	require.Error(t, err)
}

func TestLoader_LoadGlobal_NoDir(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	_, err := loader.LoadGlobal()
	require.ErrorIs(t, err, os.ErrNotExist)
}
