package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qubic.toml")
	content := "hash_mb = 16\nmax_depth = 8\nmove_time_ms = 500\nlog_file = \"moves.log\"\ncolors = false\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 16, cfg.HashMB)
	assert.Equal(t, 8, cfg.MaxDepth)
	assert.Equal(t, 500, cfg.MoveTimeMs)
	assert.Equal(t, "moves.log", cfg.LogFile)
	assert.False(t, cfg.Colors)
}

func TestLoadPartialFileKeepsRemainingDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qubic.toml")
	assert.NoError(t, os.WriteFile(path, []byte("max_depth = 6\n"), 0644))

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 6, cfg.MaxDepth)
	assert.Equal(t, Default().HashMB, cfg.HashMB)
}

func TestLoadRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"zero hash", "hash_mb = 0\n"},
		{"depth too deep", "max_depth = 99\n"},
		{"negative move time", "move_time_ms = -5\n"},
		{"broken toml", "hash_mb = = 3\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "qubic.toml")
			assert.NoError(t, os.WriteFile(path, []byte(tc.content), 0644))

			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg, "bad file falls back to defaults")
		})
	}
}
