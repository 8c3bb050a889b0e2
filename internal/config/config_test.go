package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
algorithm: kmp
workers: 4
parallel_threshold: 1024
color: never
log_level: debug
context: 16
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Algorithm:         "kmp",
		Workers:           4,
		ParallelThreshold: 1024,
		Color:             "never",
		LogLevel:          "debug",
		Context:           16,
	}, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "gsv", cfg.Algorithm)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "auto", cfg.Color)

	cfg, err = Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown_algorithm", "algorithm: boyer-moore", "algorithm"},
		{"too_many_workers", "workers: 5000", "workers"},
		{"negative_context", "context: -1", "context"},
		{"bad_color", "color: rainbow", "color"},
		{"unknown_key", "colour: auto", "colour"},
		{"malformed", "workers: [1, 2", "parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "strmatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: mp\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mp", cfg.Algorithm)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")
}

func TestSlogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		assert.Equal(t, want, (&Config{LogLevel: level}).SlogLevel())
	}
}
