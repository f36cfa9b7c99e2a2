package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported cache drivers.
const (
	CacheNone     = "none"
	CacheMemory   = "memory"
	CacheSqlite   = "sqlite"
	CachePostgres = "postgres"
	CacheValkey   = "valkey"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Canvas CanvasConfig `mapstructure:"canvas"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Initial surface size; the height is raised to the canvas minimum.
type CanvasConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type CacheConfig struct {
	Driver      string `mapstructure:"driver"`
	Size        int    `mapstructure:"size"`
	SqlitePath  string `mapstructure:"sqlite_path"`
	DatabaseURL string `mapstructure:"database_url"`
	ValkeyAddr  string `mapstructure:"valkey_addr"`
	TTLSeconds  int    `mapstructure:"ttl_seconds"`
}

// Load reads configuration from .env, an optional config.yaml and
// ROUTESKETCH_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found (using environment variables)")
	}

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("canvas.width", 800)
	v.SetDefault("canvas.height", 600)
	v.SetDefault("cache.driver", CacheMemory)
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.sqlite_path", "data/routes.db")
	v.SetDefault("cache.database_url", "")
	v.SetDefault("cache.valkey_addr", "localhost:6379")
	v.SetDefault("cache.ttl_seconds", 3600)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: ROUTESKETCH_CACHE_DRIVER → cache.driver
	v.SetEnvPrefix("ROUTESKETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Canvas.Width <= 0 {
		errs = append(errs, fmt.Sprintf("canvas.width must be positive, got %d", c.Canvas.Width))
	}
	if c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Sprintf("canvas.height must be positive, got %d", c.Canvas.Height))
	}

	drivers := []string{CacheNone, CacheMemory, CacheSqlite, CachePostgres, CacheValkey}
	if !slices.Contains(drivers, c.Cache.Driver) {
		errs = append(errs, fmt.Sprintf("cache.driver must be one of %s, got %q", strings.Join(drivers, "|"), c.Cache.Driver))
	}
	if c.Cache.Driver == CacheMemory && c.Cache.Size <= 0 {
		errs = append(errs, "cache.size must be positive for the memory cache")
	}
	if c.Cache.Driver == CacheSqlite && strings.TrimSpace(c.Cache.SqlitePath) == "" {
		errs = append(errs, "cache.sqlite_path is required for the sqlite cache")
	}
	if c.Cache.Driver == CachePostgres && strings.TrimSpace(c.Cache.DatabaseURL) == "" {
		errs = append(errs, "cache.database_url is required for the postgres cache")
	}
	if c.Cache.Driver == CacheValkey && strings.TrimSpace(c.Cache.ValkeyAddr) == "" {
		errs = append(errs, "cache.valkey_addr is required for the valkey cache")
	}
	if c.Cache.TTLSeconds < 0 {
		errs = append(errs, fmt.Sprintf("cache.ttl_seconds must not be negative, got %d", c.Cache.TTLSeconds))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
