package cache

import (
	"context"
	"fmt"
	"route-sketch-service/internal/config"
	"route-sketch-service/internal/platform/db"
	"route-sketch-service/internal/ports"
	"time"
)

// Open builds the RouteCache selected by cfg.Driver, creating SQL schemas as
// needed. The returned close func releases backend resources. A nil cache
// means caching is disabled.
func Open(ctx context.Context, cfg config.CacheConfig) (ports.RouteCache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.CacheNone, "":
		return nil, noop, nil

	case config.CacheMemory:
		c, err := NewMemoryRouteCache(cfg.Size)
		if err != nil {
			return nil, noop, err
		}
		return c, noop, nil

	case config.CacheSqlite:
		sqlDB, err := db.OpenSqlite(cfg.SqlitePath)
		if err != nil {
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		if err := InitSqliteSchema(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		return NewSqliteRouteCache(sqlDB), sqlDB.Close, nil

	case config.CachePostgres:
		sqlDB, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		if err := InitPostgresSchema(ctx, sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		return NewSQLRouteCache(sqlDB), sqlDB.Close, nil

	case config.CacheValkey:
		c, err := NewValkeyRouteCache(cfg.ValkeyAddr, time.Duration(cfg.TTLSeconds)*time.Second)
		if err != nil {
			return nil, noop, fmt.Errorf("open route cache: %w", err)
		}
		return c, func() error { c.Close(); return nil }, nil

	default:
		return nil, noop, fmt.Errorf("open route cache: unknown driver %q", cfg.Driver)
	}
}
