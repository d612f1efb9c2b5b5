package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Search.DefaultDepth)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.ProgressInterval)
	assert.Equal(t, "mix-engine", cfg.Engine.Binary)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  default_depth: 5
engine:
  binary: /opt/engines/mix-engine
database:
  type: sqlite
  path: ":memory:"
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Search.DefaultDepth)
	assert.Equal(t, "/opt/engines/mix-engine", cfg.Engine.Binary)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	// Untouched sections still get defaults
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
logging:
  level: loud
`), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadConfigOrDefault_FallsBackOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`database: {type: oracle}`), 0o644))

	cfg := LoadConfigOrDefault(path)

	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, 3, cfg.Search.DefaultDepth)
}
