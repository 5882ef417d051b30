package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
		MemoryTotalSize:       1024,
		MemoryStrategy:        "firstFit",
		ExportBaseURL:         "./exports",
		ExportFormat:          "json",
	}, cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	content := `port: 8081
scheduler:
  round_robin:
    time_quantum: 4
memory:
  total_size: 2048
  strategy: bestFit
tracing:
  enabled: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 2048, cfg.MemoryTotalSize)
	assert.Equal(t, "bestFit", cfg.MemoryStrategy)
	assert.True(t, cfg.TracingEnabled)
	assert.Equal(t, "json", cfg.ExportFormat)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("OSVIS_PORT", "7070")
	t.Setenv("OSVIS_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "5")
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 5, cfg.RoundRobinTimeQuantum)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("port: [unclosed"), 0o644))
	_, err := Load(dir)
	assert.Error(t, err)
}
