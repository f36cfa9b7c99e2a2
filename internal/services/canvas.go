package services

import (
	"context"
	"fmt"
	"route-sketch-service/internal/domain"
)

// Smallest surface height the canvas accepts on resize.
const MinSurfaceHeight = 400

// Minimum number of points (depot + 2 stops) before a route may be calculated.
const MinRoutePoints = 3

type CanvasState int

const (
	StateEmpty CanvasState = iota
	StateCollecting
	StateRouteReady
)

func (s CanvasState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateCollecting:
		return "collecting"
	case StateRouteReady:
		return "route_ready"
	default:
		return fmt.Sprintf("CanvasState(%d)", int(s))
	}
}

// Planner produces a route for an ordered point sequence.
type Planner interface {
	Plan(ctx context.Context, points []domain.Point) domain.RouteResult
}

// Canvas owns the interactive state: placed points, the current route and
// the surface size. Every mutation of the point set invalidates the route.
//
// Canvas is not safe for concurrent use; callers serialise access.
type Canvas struct {
	points domain.PointSet
	route  domain.RouteResult
	width  float64
	height float64
}

// Copy of the canvas state for rendering and serialization.
type CanvasSnapshot struct {
	Points       []domain.Point
	Route        domain.RouteResult
	State        CanvasState
	Status       string
	CanCalculate bool
	Width        float64
	Height       float64
}

func NewCanvas(width, height float64) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize adopts the container size, enforcing MinSurfaceHeight.
// Points and route are kept as they are.
func (c *Canvas) Resize(containerWidth, containerHeight float64) {
	c.width = max(containerWidth, 0)
	c.height = max(containerHeight, MinSurfaceHeight)
}

func (c *Canvas) Size() (width, height float64) { return c.width, c.height }

// AddPointAt places a point from screen coordinates. origin is the surface's
// top-left corner in the same coordinate space. Clicks outside the surface
// are ignored and report false.
func (c *Canvas) AddPointAt(clientX, clientY float64, origin domain.Point) bool {
	return c.AddPoint(domain.Point{X: clientX, Y: clientY}.Sub(origin))
}

// AddPoint places a surface-local point if it lies within the surface bounds.
func (c *Canvas) AddPoint(p domain.Point) bool {
	if !(p.X >= 0 && p.X <= c.width && p.Y >= 0 && p.Y <= c.height) {
		return false
	}

	c.points.Append(p)
	c.route = domain.RouteResult{}
	return true
}

func (c *Canvas) CanCalculate() bool { return c.points.Len() >= MinRoutePoints }

// Calculate computes and stores a route. It is a no-op returning false
// while fewer than MinRoutePoints points are placed.
func (c *Canvas) Calculate(ctx context.Context, planner Planner) bool {
	if !c.CanCalculate() {
		return false
	}

	result := planner.Plan(ctx, c.points.Points())
	c.route = domain.RouteResult{Path: result.Path.Clone(), TotalDistance: result.TotalDistance}
	return true
}

// Reset clears points and route.
func (c *Canvas) Reset() {
	c.points.Clear()
	c.route = domain.RouteResult{}
}

func (c *Canvas) State() CanvasState {
	switch {
	case c.points.Len() == 0:
		return StateEmpty
	case c.route.IsEmpty():
		return StateCollecting
	default:
		return StateRouteReady
	}
}

// Status is the one-line summary shown next to the canvas.
func (c *Canvas) Status() string {
	count := c.points.Len()

	switch {
	case count > 0 && !c.route.IsEmpty():
		return fmt.Sprintf("Route Calculated. Distance: %d units.", c.route.RoundedDistance())
	case count >= 2:
		return fmt.Sprintf("Current Points: %d. Ready to calculate route.", count)
	default:
		return fmt.Sprintf("Current Points: %d", count)
	}
}

func (c *Canvas) Snapshot() CanvasSnapshot {
	return CanvasSnapshot{
		Points:       c.points.Points(),
		Route:        domain.RouteResult{Path: c.route.Path.Clone(), TotalDistance: c.route.TotalDistance},
		State:        c.State(),
		Status:       c.Status(),
		CanCalculate: c.CanCalculate(),
		Width:        c.width,
		Height:       c.height,
	}
}
