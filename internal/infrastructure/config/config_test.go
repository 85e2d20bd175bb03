package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
  allowed_origins:
    - http://example.com
solver:
  max_width: 1000000
storage:
  database_path: test_solves.db
logging:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, int64(1000000), cfg.Solver.MaxWidth)
	assert.Equal(t, "test_solves.db", cfg.Storage.DatabasePath)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_ExpandsEnvVars(t *testing.T) {
	t.Setenv("NF_SOLVER_TEST_DB", "expanded.db")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "storage:\n  database_path: ${NF_SOLVER_TEST_DB}\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded.db", cfg.Storage.DatabasePath)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("NF_SOLVER_PORT", "9999")
	t.Setenv("NF_SOLVER_DB_PATH", "env.db")
	t.Setenv("NF_SOLVER_MAX_WIDTH", "500000")
	t.Setenv("NF_SOLVER_ALLOWED_ORIGINS", "http://a.example, http://b.example")

	cfg := LoadFromEnv()
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.Equal(t, int64(500000), cfg.Solver.MaxWidth)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"NF_SOLVER_PORT", "NF_SOLVER_DB_PATH", "NF_SOLVER_MAX_WIDTH", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := LoadFromEnv()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "nf_solver.db", cfg.Storage.DatabasePath)
	assert.Equal(t, int64(0), cfg.Solver.MaxWidth)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoadOrEnvWithPath_FallbackToEnv(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
