package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/platform/obs"
	"route-sketch-service/internal/ports"
	"strings"
)

// SQLite backed cache of computed routes.
// Keys are expected to be produced by services.CacheKey.
type SqliteRouteCache struct {
	DB *sql.DB
}

var _ ports.RouteCache = (*SqliteRouteCache)(nil)

func NewSqliteRouteCache(db *sql.DB) *SqliteRouteCache {
	return &SqliteRouteCache{DB: db}
}

// Fetch the cached route for key.
func (s *SqliteRouteCache) Get(ctx context.Context, key string) (_ domain.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.sqlite.Get")(&err)

	if s.DB == nil {
		return domain.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return domain.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT route_json
    FROM route_cache
    WHERE points_key = ?;
	`

	var routeJSON string
	err = s.DB.QueryRowContext(ctx, q, key).Scan(&routeJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RouteResult{}, false, nil
	}
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache: query route_cache table: %w", err)
	}

	r, err := decodeEntry([]byte(routeJSON))
	if err != nil {
		return domain.RouteResult{}, false, fmt.Errorf("get route cache key=%q: %w", key, err)
	}

	return r, true, nil
}

// Store a route under key, replacing any previous entry.
func (s *SqliteRouteCache) Put(ctx context.Context, key string, result domain.RouteResult) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return errors.New("insert route cache: key must not be empty")
	}

	routeJSON, err := encodeEntry(result)
	if err != nil {
		return fmt.Errorf("insert route cache: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO route_cache (
        points_key,
        point_count,
        route_json
    )
    VALUES (?, ?, ?);
	`

	pointCount := max(len(result.Path)-1, 0)
	if _, err := s.DB.ExecContext(ctx, q, key, pointCount, string(routeJSON)); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
