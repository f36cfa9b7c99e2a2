package domain

import "math"

// Immutable 2D coordinate on the drawing surface.
type Point struct {
	X float64
	Y float64
}

// Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Sub returns the point translated by -o.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Midpoint of the segment a->b.
func Midpoint(a, b Point) Point { return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2} }

// Ordered collection of points where index 0 is the depot.
// A PointSet only grows by Append or empties by Clear; identity is positional.
type PointSet struct {
	points []Point
}

func NewPointSet(points ...Point) *PointSet {
	ps := &PointSet{}
	for _, p := range points {
		ps.Append(p)
	}
	return ps
}

// Append adds a point and returns its index.
func (s *PointSet) Append(p Point) int {
	s.points = append(s.points, p)
	return len(s.points) - 1
}

// Clear removes every point.
func (s *PointSet) Clear() { s.points = nil }

func (s *PointSet) Len() int { return len(s.points) }

func (s *PointSet) At(i int) Point { return s.points[i] }

// Depot returns the point at index 0, if any.
func (s *PointSet) Depot() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[0], true
}

func IsDepot(index int) bool { return index == 0 }

// Points returns a copy of the ordered points.
func (s *PointSet) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}
