package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.EqualValues(t, 200, cfg.MaxUploadMB)
	assert.Equal(t, "./input", cfg.InputDir)
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "./input_archive", cfg.InputArchiveDir)
	assert.Equal(t, "./output_archive", cfg.OutputArchiveDir)
	assert.Equal(t, "{name}_transactions_{timestamp}.xlsx", cfg.OutputNameFormat)
	assert.Equal(t, 4, cfg.MaxConcurrency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := `listen_addr: ":9090"
max_upload_mb: 50
input_dir: /data/in
max_concurrency: 8
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.EqualValues(t, 50, cfg.MaxUploadMB)
	assert.Equal(t, "/data/in", cfg.InputDir)
	assert.Equal(t, 8, cfg.MaxConcurrency)
	assert.Equal(t, "debug", cfg.LogLevel)

	// Options absent from the file keep their defaults.
	assert.Equal(t, "./output", cfg.OutputDir)
	assert.Equal(t, "{name}_transactions_{timestamp}.xlsx", cfg.OutputNameFormat)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("listen_addr: [broken"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadInvalidValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"negative upload limit", "max_upload_mb: -1", "max_upload_mb"},
		{"negative concurrency", "max_concurrency: -2", "max_concurrency"},
		{"unknown log level", "log_level: loud", "log_level"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := Default()
	cfg.MaxUploadMB = 5
	assert.EqualValues(t, 5*1024*1024, cfg.MaxUploadBytes())
}
