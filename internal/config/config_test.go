package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, CacheMemory, cfg.Cache.Driver)
	require.Equal(t, 256, cfg.Cache.Size)
	require.Equal(t, 800, cfg.Canvas.Width)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ROUTESKETCH_SERVER_PORT", "9090")
	t.Setenv("ROUTESKETCH_CACHE_DRIVER", "sqlite")
	t.Setenv("ROUTESKETCH_CACHE_SQLITE_PATH", "/tmp/routes.db")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Server.Port)
	require.Equal(t, CacheSqlite, cfg.Cache.Driver)
	require.Equal(t, "/tmp/routes.db", cfg.Cache.SqlitePath)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 0, ReadTimeout: 1, WriteTimeout: 1},
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Cache:  CacheConfig{Driver: "postgres"},
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "server.port")
	require.Contains(t, err.Error(), "cache.database_url")
}

func TestValidateUnknownDriver(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 80, ReadTimeout: 1, WriteTimeout: 1},
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Cache:  CacheConfig{Driver: "memcached"},
	}

	require.ErrorContains(t, cfg.Validate(), "cache.driver")
}

func TestValidateReportsEveryCacheProblem(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 80, ReadTimeout: 1, WriteTimeout: 1},
		Canvas: CanvasConfig{Width: 800, Height: 600},
		Cache:  CacheConfig{Driver: CacheValkey, TTLSeconds: -5},
	}

	err := cfg.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cache.valkey_addr")
	require.Contains(t, err.Error(), "cache.ttl_seconds")
}
