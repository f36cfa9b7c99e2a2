package services

import (
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/platform/metrics"
	"route-sketch-service/internal/ports"
	"time"

	"github.com/cespare/xxhash/v2"
)

// RoutePlanner computes routes and optionally memoises them in a RouteCache.
//
// Plan never fails: cache problems are logged and the route is rebuilt.
// A cached entry is only served when it replays as the greedy tour for the
// requested points with a distance matching its path.
// The planner is safe for concurrent use when its cache is.
type RoutePlanner struct {
	cache ports.RouteCache
}

// NewRoutePlanner returns a planner. cache may be nil.
func NewRoutePlanner(cache ports.RouteCache) *RoutePlanner {
	return &RoutePlanner{cache: cache}
}

func (p *RoutePlanner) Plan(ctx context.Context, points []domain.Point) domain.RouteResult {
	metrics.RoutePoints.Observe(float64(len(points)))

	if len(points) < 2 || p.cache == nil {
		return p.compute(points)
	}

	key := CacheKey(points)

	cached, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		metrics.CacheErrors.WithLabelValues("get").Inc()
		slog.WarnContext(ctx, "route cache read failed", "key", key, "err", err)
	}
	if ok && IsNearestNeighborTour(points, cached) {
		metrics.CacheHits.Inc()
		return cached
	}
	if ok {
		slog.WarnContext(ctx, "route cache entry does not match points; recomputing", "key", key)
	}
	metrics.CacheMisses.Inc()

	result := p.compute(points)

	if err := p.cache.Put(ctx, key, result); err != nil {
		metrics.CacheErrors.WithLabelValues("put").Inc()
		slog.WarnContext(ctx, "route cache write failed", "key", key, "err", err)
	}

	return result
}

func (p *RoutePlanner) compute(points []domain.Point) domain.RouteResult {
	start := time.Now()
	result := ComputeRoute(points)
	metrics.RouteComputeDuration.Observe(time.Since(start).Seconds())
	metrics.RoutesComputed.Inc()
	return result
}

// CacheKey hashes the ordered coordinates. Point order is significant.
func CacheKey(points []domain.Point) string {
	d := xxhash.New()
	var buf [16]byte
	for _, pt := range points {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(pt.X))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(pt.Y))
		_, _ = d.Write(buf[:])
	}
	return fmt.Sprintf("%d:%016x", len(points), d.Sum64())
}
