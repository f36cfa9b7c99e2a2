package ports

import (
	"context"
	"route-sketch-service/internal/domain"
)

// Contract for memoising computed routes keyed by the ordered input points.
type RouteCache interface {
	// Return the cached result for key. ok is false on a miss.
	Get(ctx context.Context, key string) (result domain.RouteResult, ok bool, err error)
	// Store a result under key, replacing any previous entry.
	Put(ctx context.Context, key string, result domain.RouteResult) error
}
