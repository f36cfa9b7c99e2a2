package domain

import "math"

// Visitation order of a route. A non-empty Route starts and ends at the depot.
type Route []Point

// Represents the output of the route builder.
// Path and TotalDistance are always produced together and must be stored together.
type RouteResult struct {
	Path          Route
	TotalDistance float64
}

// Length recomputes the sum of consecutive Euclidean edge lengths.
func (r Route) Length() float64 {
	total := 0.0
	for i := 1; i < len(r); i++ {
		total += Distance(r[i-1], r[i])
	}
	return total
}

// Clone returns an independent copy of the route.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)
	return out
}

func (r RouteResult) IsEmpty() bool { return len(r.Path) == 0 }

// RoundedDistance is the total distance rounded to the nearest whole unit.
func (r RouteResult) RoundedDistance() int64 {
	return int64(math.Round(r.TotalDistance))
}

// Covers reports whether the result is a valid closed tour over points:
// either empty, or len(points)+1 entries starting and ending at the depot
// with every input point visited exactly once.
func (r RouteResult) Covers(points []Point) bool {
	if len(r.Path) == 0 {
		return r.TotalDistance == 0
	}
	if len(points) < 2 || len(r.Path) != len(points)+1 {
		return false
	}
	depot := points[0]
	if r.Path[0] != depot || r.Path[len(r.Path)-1] != depot {
		return false
	}

	remaining := make(map[Point]int, len(points))
	for _, p := range points {
		remaining[p]++
	}
	for _, p := range r.Path[:len(r.Path)-1] {
		if remaining[p] == 0 {
			return false
		}
		remaining[p]--
	}

	return true
}
