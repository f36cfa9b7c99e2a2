package services

import (
	"context"
	"route-sketch-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanvasLifecycle(t *testing.T) {
	ctx := context.Background()
	planner := NewRoutePlanner(nil)
	c := NewCanvas(800, 600)

	require.Equal(t, StateEmpty, c.State())
	require.Equal(t, "Current Points: 0", c.Status())
	require.False(t, c.CanCalculate())

	require.True(t, c.AddPoint(domain.Point{X: 0, Y: 0}))
	require.Equal(t, StateCollecting, c.State())
	require.Equal(t, "Current Points: 1", c.Status())

	require.True(t, c.AddPoint(domain.Point{X: 10, Y: 0}))
	require.Equal(t, "Current Points: 2. Ready to calculate route.", c.Status())
	require.False(t, c.Calculate(ctx, planner), "two points must not calculate")
	require.Equal(t, StateCollecting, c.State())

	require.True(t, c.AddPoint(domain.Point{X: 10, Y: 10}))
	require.True(t, c.AddPoint(domain.Point{X: 0, Y: 10}))
	require.True(t, c.CanCalculate())

	require.True(t, c.Calculate(ctx, planner))
	require.Equal(t, StateRouteReady, c.State())
	require.Equal(t, "Route Calculated. Distance: 40 units.", c.Status())

	snap := c.Snapshot()
	require.Len(t, snap.Route.Path, 5)
	require.InDelta(t, snap.Route.Path.Length(), snap.Route.TotalDistance, 1e-9)

	// Any new point invalidates the route.
	require.True(t, c.AddPoint(domain.Point{X: 5, Y: 5}))
	require.Equal(t, StateCollecting, c.State())
	require.Empty(t, c.Snapshot().Route.Path)
	require.Zero(t, c.Snapshot().Route.TotalDistance)

	require.True(t, c.Calculate(ctx, planner))
	c.Reset()
	require.Equal(t, StateEmpty, c.State())
	snap = c.Snapshot()
	require.Empty(t, snap.Points)
	require.Empty(t, snap.Route.Path)
	require.Zero(t, snap.Route.TotalDistance)
	require.Equal(t, "Current Points: 0", snap.Status)
}

func TestCanvasAddPointAtTranslatesAndBounds(t *testing.T) {
	c := NewCanvas(200, 500)
	origin := domain.Point{X: 100, Y: 50}

	require.True(t, c.AddPointAt(150, 70, origin))
	require.Equal(t, []domain.Point{{X: 50, Y: 20}}, c.Snapshot().Points)

	// Edges are inclusive.
	require.True(t, c.AddPointAt(100, 50, origin))
	require.True(t, c.AddPointAt(300, 550, origin))

	require.False(t, c.AddPointAt(99, 60, origin))
	require.False(t, c.AddPointAt(301, 60, origin))
	require.False(t, c.AddPointAt(150, 49, origin))
	require.False(t, c.AddPointAt(150, 551, origin))
	require.Len(t, c.Snapshot().Points, 3)
}

func TestCanvasResizeKeepsRoute(t *testing.T) {
	ctx := context.Background()
	c := NewCanvas(800, 100)

	w, h := c.Size()
	require.Equal(t, 800.0, w)
	require.Equal(t, float64(MinSurfaceHeight), h)

	for _, p := range square {
		require.True(t, c.AddPoint(p))
	}
	require.True(t, c.Calculate(ctx, NewRoutePlanner(nil)))
	before := c.Snapshot().Route

	c.Resize(1024, 900)
	w, h = c.Size()
	require.Equal(t, 1024.0, w)
	require.Equal(t, 900.0, h)
	require.Equal(t, before, c.Snapshot().Route)
	require.Equal(t, StateRouteReady, c.State())
}

type stubPlanner struct{ calls int }

func (s *stubPlanner) Plan(ctx context.Context, points []domain.Point) domain.RouteResult {
	s.calls++
	return ComputeRoute(points)
}

func TestCanvasCalculateGuarded(t *testing.T) {
	c := NewCanvas(100, 100)
	p := &stubPlanner{}

	require.False(t, c.Calculate(context.Background(), p))
	c.AddPoint(domain.Point{X: 1, Y: 1})
	c.AddPoint(domain.Point{X: 2, Y: 2})
	require.False(t, c.Calculate(context.Background(), p))
	require.Zero(t, p.calls)
}

func TestCanvasStateString(t *testing.T) {
	require.Equal(t, "empty", StateEmpty.String())
	require.Equal(t, "collecting", StateCollecting.String())
	require.Equal(t, "route_ready", StateRouteReady.String())
}
