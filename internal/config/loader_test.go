package config

import (
	"os"
	"path/filepath"
	"testing"

	"go-survivors/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBalance(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "balance.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultBalanceIsValid(t *testing.T) {
	assert.NoError(t, DefaultBalance().Validate())
}

func TestLoadBalanceWithoutPathUsesDefaults(t *testing.T) {
	b, err := LoadBalance("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBalance(), b)
}

func TestShippedBalanceMatchesDefaults(t *testing.T) {
	b, err := LoadBalance(filepath.Join("..", "..", "configs", "balance.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultBalance(), b)
}

func TestLoadBalanceOverlaysDefaults(t *testing.T) {
	path := writeBalance(t, "player:\n  speed: 250\ngate:\n  max_games_per_day: 5\n")

	b, err := LoadBalance(path)
	require.NoError(t, err)
	assert.Equal(t, 250.0, b.Player.Speed)
	assert.Equal(t, 100.0, b.Player.MaxHealth)
	assert.Equal(t, 5, b.Gate.MaxGamesPerDay)
	assert.Equal(t, 999, b.Gate.DevMaxGamesPerDay)
	assert.Len(t, b.Enemy.Tiers, 3)
}

func TestLoadBalanceErrors(t *testing.T) {
	_, err := LoadBalance(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read balance file")

	_, err = LoadBalance(writeBalance(t, "player: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal")

	_, err = LoadBalance(writeBalance(t, "player:\n  speed: -1\nenemy:\n  max_count: 0\n  tiers: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player.speed must be positive")
	assert.Contains(t, err.Error(), "pool capacities must be positive")
	assert.Contains(t, err.Error(), "at least one enemy tier is required")

	_, err = LoadBalance(writeBalance(t, "enemy:\n  min_spawn_factor: 0\n  base_size: 0\nskins:\n  wizard_regen_interval: 0\n  mesmer_regen_interval: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enemy.min_spawn_factor must be positive")
	assert.Contains(t, err.Error(), "enemy.base_size must be positive")
	assert.Contains(t, err.Error(), "skins.wizard_regen_interval must be positive")
	assert.Contains(t, err.Error(), "skins.mesmer_regen_interval must be positive")
}

func TestTierFallsBackToFirst(t *testing.T) {
	b := DefaultBalance()
	assert.Equal(t, defs.Tier2, b.Enemy.Tier(defs.Tier2).Tier)
	assert.Equal(t, defs.Tier1, b.Enemy.Tier(defs.EnemyTier(42)).Tier)
}
