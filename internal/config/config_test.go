package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults", func(t *testing.T) {
		// Given: an empty config file
		path := writeConfig(t, "{}\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: every key has its default
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, StorageMemory, conf.Storage)
		assert.Equal(t, "exempt-move", conf.CapturePolicy)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.GameTTL)
		assert.Equal(t, 200*time.Millisecond, conf.Cooldown.Start)
		assert.Equal(t, 50*time.Millisecond, conf.Cooldown.Move)
	})

	t.Run("Reads the yaml keys", func(t *testing.T) {
		// Given: a file that sets every key
		path := writeConfig(t, `log-level: debug
http-port: "8080"
storage: redis
capture-policy: opponent-only
redis:
  host: cache
  port: "6380"
  game-ttl: 1h
cooldown:
  start: 1s
  move: 100ms
`)

		// When: it is loaded
		conf, err := Load(path)

		// Then: the values come from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8080", conf.HTTPPort)
		assert.Equal(t, StorageRedis, conf.Storage)
		assert.Equal(t, "opponent-only", conf.CapturePolicy)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.GameTTL)
		assert.Equal(t, time.Second, conf.Cooldown.Start)
		assert.Equal(t, 100*time.Millisecond, conf.Cooldown.Move)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8080\"\n")
		t.Setenv("HTTP_PORT", "7070")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
	})

	t.Run("Rejects an unknown storage", func(t *testing.T) {
		path := writeConfig(t, "storage: mongo\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}
