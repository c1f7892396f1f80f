package domain

import (
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, StoreJSON, cfg.Tasks.Store)
	assert.Equal(t, DefaultNamespace, cfg.Tasks.Namespace)
	assert.Equal(t, "Personal", cfg.NewTaskCategory())
	assert.Equal(t, PriorityMedium, cfg.NewTaskPriority())
	assert.Equal(t, []string{"Personal", "Work", "Shopping", "Health", "Learning"}, cfg.Tasks.Categories)
	require.NoError(t, cfg.Validate())

	q, err := cfg.DefaultQuery()
	require.NoError(t, err)
	assert.Equal(t, Query{Filter: FilterAll, Sort: SortDate, Category: CategoryAll}, q)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"bad store", func(c *Config) { c.Tasks.Store = "sqlite" }, ErrInvalidStoreType},
		{"bad priority", func(c *Config) { c.Tasks.DefaultPriority = "asap" }, ErrInvalidPriority},
		{"bad filter", func(c *Config) { c.View.Filter = "pending" }, ErrInvalidFilter},
		{"bad sort", func(c *Config) { c.View.Sort = "random" }, ErrInvalidSort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConfig_Fallbacks(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, DefaultCategory, cfg.NewTaskCategory())
	assert.Equal(t, PriorityMedium, cfg.NewTaskPriority())
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Tasks.DefaultCategory = "Work"

	content := RenderConfigTemplate(cfg)

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, "Work", parsed.Tasks.DefaultCategory)
	assert.Equal(t, cfg.Tasks.Categories, parsed.Tasks.Categories)
	assert.Equal(t, "all", parsed.View.Filter)
	assert.Equal(t, "info", parsed.Log.Level)
}

func TestConfigPaths(t *testing.T) {
	assert.Equal(t, "/home/u/.config/taskflow/config.toml", GlobalConfigPath("/home/u/.config"))
	assert.Equal(t, "/data/config.toml", DataConfigPath("/data"))
	assert.Equal(t, "/data/logs/taskflow.log", GlobalLogPath("/data"))
	assert.Equal(t, "/data/tasks.json", TasksStorePath("/data"))
	assert.Equal(t, "refs/taskflow/tasks", TaskRefName("taskflow"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0f8fad5b", ShortID("0f8fad5b-d9cb-469f-a165-70867728950e"))
	assert.Equal(t, "42", ShortID("42"))
}
