package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"route-sketch-service/internal/adapters/cache"
	"route-sketch-service/internal/config"
	"route-sketch-service/internal/platform/db"
	"route-sketch-service/internal/platform/logging"

	"github.com/spf13/pflag"
)

// dbtool prepares the SQL route cache selected by the configuration.
//
//	dbtool            create the route_cache table and index
//	dbtool --purge    also delete every cached route
func main() {
	purge := pflag.Bool("purge", false, "delete all cached routes after schema initialization")
	driver := pflag.String("driver", "", "override cache.driver (sqlite|postgres)")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	if *driver != "" {
		cfg.Cache.Driver = *driver
	}

	if err := run(context.Background(), cfg.Cache, *purge); err != nil {
		slog.Error("dbtool failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.CacheConfig, purge bool) error {
	var (
		sqlDB      *sql.DB
		err        error
		initSchema func(context.Context, *sql.DB) error
	)

	switch cfg.Driver {
	case config.CacheSqlite:
		sqlDB, err = db.OpenSqlite(cfg.SqlitePath)
		initSchema = cache.InitSqliteSchema
	case config.CachePostgres:
		sqlDB, err = db.Open(cfg.DatabaseURL)
		initSchema = cache.InitPostgresSchema
	default:
		return fmt.Errorf("driver %q has no SQL schema", cfg.Driver)
	}
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	slog.Info("initializing route cache schema", "driver", cfg.Driver)
	if err := initSchema(ctx, sqlDB); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	slog.Info("schema ready")

	if !purge {
		return nil
	}

	n, err := cache.Purge(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("purge failed: %w", err)
	}
	slog.Info("route cache purged", "rows", n)
	return nil
}
