package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitCommand(t *testing.T) {
	c, store := newTestContainer(t)

	out, err := run(c, "init", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialized taskflow in "+c.Config.DataDir)
	assert.Contains(t, out, "demo task(s)")
	assert.NotEmpty(t, store.Tasks)
	assert.DirExists(t, filepath.Join(c.Config.DataDir, "logs"))

	// Running again keeps tasks and does not seed twice
	seeded := len(store.Tasks)
	out, err = run(c, "init", "--demo")
	require.NoError(t, err)
	assert.Contains(t, out, "already initialized")
	assert.Len(t, store.Tasks, seeded)
}

func TestInitCommand_Error(t *testing.T) {
	c, _ := newTestContainer(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))
	c.Config.DataDir = blocker

	_, err := run(c, "init")

	assert.Error(t, err)
}
