package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.NoError(t, err)
	assert.Equal(t, ":8181", cfg.Addr)
	assert.True(t, cfg.Frontend.Enabled)
	assert.Equal(t, "./data", cfg.Storage.Dir)
	assert.Equal(t, "2025-06-30", cfg.Tracker.AnchorDate)
	assert.False(t, cfg.Tracker.ActualsAsOfFilter)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := `addr: ":9090"
storage:
  dir: "/var/lib/hourtrack"
tracker:
  anchordate: "2025-01-06"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/var/lib/hourtrack", cfg.Storage.Dir)
	assert.Equal(t, "2025-01-06", cfg.Tracker.AnchorDate)
	// untouched keys keep their defaults
	assert.True(t, cfg.Frontend.Enabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644))
	t.Setenv("HOURTRACK_ADDR", ":7070")
	t.Setenv("HOURTRACK_TRACKER_ACTUALSASOFFILTER", "true")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.True(t, cfg.Tracker.ActualsAsOfFilter)
}
