package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "records", cfg.Package)
	assert.True(t, cfg.Types)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Schemas)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ferry.yaml", `
package: wire
output: wire_ferry.go
types: false
schemas:
  - a.fsch
  - b.fsch
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Package: "wire",
		Output:  "wire_ferry.go",
		Types:   false,
		Schemas: []string{"a.fsch", "b.fsch"},
		Log:     Log{Level: "debug"},
	}, cfg)
}

func TestLoadJSONKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "ferry.json", `{"output": "out.go"}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out.go", cfg.Output)
	assert.Equal(t, "records", cfg.Package)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "ferry.yml", "package: wire\nlog:\n  level: warn\n")
	t.Setenv("FERRY_PACKAGE", "fromenv")
	t.Setenv("FERRY_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromenv", cfg.Package)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, "ferry.yaml", "package: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := Log{Level: "warn"}.Logger(&out)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, logger.Sync())

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
}

func TestLoggerBadLevel(t *testing.T) {
	_, err := Log{Level: "loud"}.Logger(&bytes.Buffer{})
	assert.Error(t, err)
}
