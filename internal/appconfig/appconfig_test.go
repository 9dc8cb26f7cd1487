package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAutoplayConfigDefaults(t *testing.T) {
	cfg, err := LoadAutoplayConfig()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Deals)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, "basic", cfg.Team0)
	assert.Equal(t, "random", cfg.Team1)
	assert.False(t, cfg.FreeDiscard)
	assert.Equal(t, 24, cfg.Samples)
}

func TestLoadAutoplayConfigFromEnv(t *testing.T) {
	t.Setenv("SUECA_DEALS", "7")
	t.Setenv("SUECA_SEED", "42")
	t.Setenv("SUECA_TEAM0", "search")
	t.Setenv("SUECA_FREE_DISCARD", "true")
	cfg, err := LoadAutoplayConfig()
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Deals)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "search", cfg.Team0)
	assert.Equal(t, "random", cfg.Team1)
	assert.True(t, cfg.FreeDiscard)
}

func TestLoadAutoplayConfigRejectsBadNumber(t *testing.T) {
	t.Setenv("SUECA_DEALS", "many")
	_, err := LoadAutoplayConfig()
	assert.Error(t, err)
}

func TestUsageNamesVariables(t *testing.T) {
	assert.Contains(t, Usage(), "SUECA_TEAM1")
}
