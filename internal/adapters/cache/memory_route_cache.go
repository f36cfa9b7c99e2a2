package cache

import (
	"context"
	"fmt"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/ports"

	lru "github.com/hashicorp/golang-lru"
)

// MemoryRouteCache keeps the most recently used routes in process memory.
// It is safe for concurrent use.
type MemoryRouteCache struct {
	lru *lru.Cache
}

var _ ports.RouteCache = (*MemoryRouteCache)(nil)

func NewMemoryRouteCache(size int) (*MemoryRouteCache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("memory route cache: %w", err)
	}
	return &MemoryRouteCache{lru: c}, nil
}

func (m *MemoryRouteCache) Get(ctx context.Context, key string) (domain.RouteResult, bool, error) {
	v, ok := m.lru.Get(key)
	if !ok {
		return domain.RouteResult{}, false, nil
	}
	r, ok := v.(domain.RouteResult)
	if !ok {
		return domain.RouteResult{}, false, fmt.Errorf("memory route cache: unexpected value %T for key %q", v, key)
	}
	return domain.RouteResult{Path: r.Path.Clone(), TotalDistance: r.TotalDistance}, true, nil
}

func (m *MemoryRouteCache) Put(ctx context.Context, key string, result domain.RouteResult) error {
	m.lru.Add(key, domain.RouteResult{Path: result.Path.Clone(), TotalDistance: result.TotalDistance})
	return nil
}

func (m *MemoryRouteCache) Len() int { return m.lru.Len() }
