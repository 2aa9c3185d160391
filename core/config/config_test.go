package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoad(t *testing.T) {
	t.Run("defaults apply", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 7070, cfg.App.Port)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
		assert.Equal(t, 1440, cfg.JWT.ExpireInMinutes)
		assert.True(t, cfg.Queue.Enabled)

		got, ok := GetSafe()
		require.True(t, ok)
		assert.Same(t, cfg, got)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("APP_PORT", "9090")
		t.Setenv("REDIS_HOST", "cache")
		t.Setenv("QUEUE_ENABLED", "false")
		t.Setenv("JWT_SECRET", "from-env")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.App.Port)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr())
		assert.False(t, cfg.Queue.Enabled)
		assert.Equal(t, "from-env", cfg.JWT.Secret)
	})
}

func TestGetPanicsBeforeLoad(t *testing.T) {
	Set(nil)
	assert.Panics(t, func() { Get() })
}
