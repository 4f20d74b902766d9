package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"techu/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "techu.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
	assert.IsType(t, &game.StandardRules{}, cfg.GameRules())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
rules:
  capture: strict-color
simulation:
  games: 12
  seed: 99
pacing:
  opponent_delay: 250ms
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, game.StrictColorCapture, cfg.Rules.Capture)
	assert.IsType(t, &game.StrictColorRules{}, cfg.GameRules())
	assert.Equal(t, 12, cfg.Simulation.Games)
	assert.Equal(t, uint64(99), cfg.Simulation.Seed)
	assert.Equal(t, Default().Simulation.MaxTurns, cfg.Simulation.MaxTurns, "unset fields keep defaults")
	assert.Equal(t, 250*time.Millisecond, cfg.Pacing.OpponentDelay)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown capture rule", content: "rules:\n  capture: sometimes\n"},
		{name: "no games", content: "simulation:\n  games: 0\n"},
		{name: "negative delay", content: "pacing:\n  opponent_delay: -1s\n"},
		{name: "malformed yaml", content: "simulation: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
