package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "LOG_FILE", "CLIENT_ORIGIN", "GUESS_MIN",
		"GUESS_MAX", "GUESS_ATTEMPTS", "GUESS_SEED", "REMARKS_FILE", "DAILY_SALT"} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	assert.Equal(t, game.DefaultRules(), cfg.Rules)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.RemarksFile)
	assert.Equal(t, "local_dev_salt", cfg.DailySalt)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("GUESS_MIN", "5")
	t.Setenv("GUESS_MAX", "10")
	t.Setenv("GUESS_ATTEMPTS", "3")
	t.Setenv("GUESS_SEED", "1234")
	t.Setenv("REMARKS_FILE", "/tmp/r.txt")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, game.Rules{Min: 5, Max: 10, Attempts: 3}, cfg.Rules)
	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "/tmp/r.txt", cfg.RemarksFile)
}

func TestFromEnv_Errors(t *testing.T) {
	t.Run("bad attempts", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GUESS_ATTEMPTS", "six")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "GUESS_ATTEMPTS")
	})

	t.Run("inverted range", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GUESS_MIN", "50")
		t.Setenv("GUESS_MAX", "10")
		_, err := FromEnv()
		assert.ErrorIs(t, err, game.ErrInvalidRules)
	})

	t.Run("bad seed", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("GUESS_SEED", "-1")
		_, err := FromEnv()
		assert.ErrorContains(t, err, "GUESS_SEED")
	})
}
