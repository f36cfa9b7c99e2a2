package services

import (
	"math"
	"route-sketch-service/internal/domain"
)

// Relative slack allowed between a stored total and the recomputed path length.
const distanceTolerance = 1e-9

// ComputeRoute builds a closed tour using a greedy nearest-neighbor algorithm.
//
// The tour starts at points[0] (the depot), repeatedly moves to the closest
// unvisited point and finally returns to the depot. It does not attempt global
// route optimization. Fewer than two points yield an empty result.
//
// Ties on exactly equal distances go to the lowest input index.
func ComputeRoute(points []domain.Point) domain.RouteResult {
	if len(points) < 2 {
		return domain.RouteResult{Path: domain.Route{}, TotalDistance: 0}
	}

	visited := make([]bool, len(points))
	path := make(domain.Route, 0, len(points)+1)
	totalDistance := 0.0

	current := 0
	visited[current] = true
	path = append(path, points[current])

	for remaining := len(points) - 1; remaining > 0; remaining-- {
		nearest := nearestUnvisited(points, visited, current)

		visited[nearest] = true
		path = append(path, points[nearest])
		totalDistance += domain.Distance(points[current], points[nearest])
		current = nearest
	}

	// Close the loop back to the depot.
	totalDistance += domain.Distance(points[current], points[0])
	path = append(path, points[0])

	return domain.RouteResult{Path: path, TotalDistance: totalDistance}
}

// IsNearestNeighborTour reports whether r is the tour ComputeRoute builds for
// points: same visiting order, and a TotalDistance equal to the path length.
func IsNearestNeighborTour(points []domain.Point, r domain.RouteResult) bool {
	if len(points) < 2 {
		return r.IsEmpty() && r.TotalDistance == 0
	}
	if r.IsEmpty() || !r.Covers(points) {
		return false
	}

	length := r.Path.Length()
	if math.Abs(length-r.TotalDistance) > distanceTolerance*max(1, length) {
		return false
	}

	visited := make([]bool, len(points))
	visited[0] = true
	current := 0
	for k := 1; k < len(points); k++ {
		next := nearestUnvisited(points, visited, current)
		if r.Path[k] != points[next] {
			return false
		}
		visited[next] = true
		current = next
	}

	return true
}

// nearestUnvisited returns the index of the unvisited point closest to
// points[current]. At least one point must be unvisited.
func nearestUnvisited(points []domain.Point, visited []bool, current int) int {
	nearest := -1
	minDistance := math.Inf(1)

	// Ascending scan with strict < keeps the lowest index on ties.
	for i, p := range points {
		if visited[i] {
			continue
		}
		if d := domain.Distance(points[current], p); d < minDistance {
			minDistance = d
			nearest = i
		}
	}

	// Only NaN coordinates can leave nothing selected; take the first unvisited.
	if nearest == -1 {
		for i := range points {
			if !visited[i] {
				return i
			}
		}
	}

	return nearest
}
