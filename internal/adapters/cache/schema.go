package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite route cache schema.
func InitSqliteSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS route_cache (
        points_key TEXT PRIMARY KEY,
        point_count INTEGER NOT NULL,
        route_json TEXT NOT NULL
    );
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_route_cache_point_count
    ON route_cache(point_count);
	`,
	})
}

// Initialize the Postgres route cache schema.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	return initSchema(ctx, db, []string{
		`
	CREATE TABLE IF NOT EXISTS route_cache (
        points_key TEXT PRIMARY KEY,
        point_count INTEGER NOT NULL,
        route_json TEXT NOT NULL
    );
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_route_cache_point_count
    ON route_cache(point_count);
	`,
	})
}

func initSchema(ctx context.Context, db *sql.DB, statements []string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Purge removes every cached route.
func Purge(ctx context.Context, db *sql.DB) (int64, error) {
	if db == nil {
		return 0, errors.New("purge route cache: DB is nil")
	}

	res, err := db.ExecContext(ctx, `DELETE FROM route_cache;`)
	if err != nil {
		return 0, fmt.Errorf("purge route cache: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge route cache: rows affected: %w", err)
	}
	return n, nil
}
