package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openface.hcl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
log_level = "debug"

game {
  variant = "pineapple"
  players = 3
}

simulate {
  games   = 500
  rounds  = 2
  seed    = 42
  workers = 8
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "pineapple", cfg.Game.Variant)
	assert.Equal(t, 3, cfg.Game.Players)
	assert.Equal(t, 500, cfg.Simulate.Games)
	assert.Equal(t, 2, cfg.Simulate.Rounds)
	assert.Equal(t, int64(42), cfg.Simulate.Seed)
	assert.Equal(t, 8, cfg.Simulate.Workers)
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
game {
  players = 4
}

simulate {
  games = 10
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "ofc", cfg.Game.Variant)
	assert.Equal(t, 4, cfg.Game.Players)
	assert.Equal(t, 10, cfg.Simulate.Games)
	assert.Equal(t, 1, cfg.Simulate.Rounds)
	assert.Equal(t, 4, cfg.Simulate.Workers)
}

func TestLoadWithoutBlocks(t *testing.T) {
	path := writeConfig(t, `log_level = "warn"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, Default().Game, cfg.Game)
	assert.Equal(t, Default().Simulate, cfg.Simulate)
}

func TestLoadMalformedConfig(t *testing.T) {
	path := writeConfig(t, `game {`)
	_, err := Load(path)
	assert.Error(t, err)
}
