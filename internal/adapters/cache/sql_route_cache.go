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

// SQLRouteCache is a Postgres-backed cache of computed routes.
type SQLRouteCache struct {
	DB *sql.DB
}

var _ ports.RouteCache = (*SQLRouteCache)(nil)

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch the cached route for key.
func (s *SQLRouteCache) Get(ctx context.Context, key string) (_ domain.RouteResult, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.sql.Get")(&err)

	if s.DB == nil {
		return domain.RouteResult{}, false, errors.New("route cache: db is nil")
	}

	if strings.TrimSpace(key) == "" {
		return domain.RouteResult{}, false, errors.New("get route cache: key must not be empty")
	}

	q := `
	SELECT route_json
    FROM route_cache
    WHERE points_key = $1;
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
func (s *SQLRouteCache) Put(ctx context.Context, key string, result domain.RouteResult) error {
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
	INSERT INTO route_cache (points_key, point_count, route_json)
    VALUES ($1, $2, $3)
	ON CONFLICT (points_key) DO UPDATE
	SET point_count = EXCLUDED.point_count,
		route_json = EXCLUDED.route_json;
	`

	pointCount := max(len(result.Path)-1, 0)
	if _, err := s.DB.ExecContext(ctx, q, key, pointCount, string(routeJSON)); err != nil {
		return fmt.Errorf("insert route cache key=%q: %w", key, err)
	}

	return nil
}
