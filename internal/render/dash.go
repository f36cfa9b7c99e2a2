package render

import "route-sketch-service/internal/domain"

// DashSegments splits a polyline into the visible runs of a dash pattern
// (alternating on/off lengths). The pattern phase continues across vertices,
// matching how a single stroked path is dashed. An empty or non-positive
// pattern yields the polyline itself as one run.
func DashSegments(polyline []domain.Point, pattern []float64) [][]domain.Point {
	if len(polyline) < 2 {
		return nil
	}

	total := 0.0
	for _, d := range pattern {
		if d < 0 {
			total = 0
			break
		}
		total += d
	}
	if total == 0 {
		out := make([]domain.Point, len(polyline))
		copy(out, polyline)
		return [][]domain.Point{out}
	}

	var (
		runs    [][]domain.Point
		current []domain.Point
		idx     = 0
		left    = pattern[0]
		on      = true
	)

	for i := 1; i < len(polyline); i++ {
		a, b := polyline[i-1], polyline[i]
		segLen := domain.Distance(a, b)
		pos := 0.0

		for pos < segLen {
			step := min(left, segLen-pos)
			from := lerp(a, b, pos/segLen)
			to := lerp(a, b, (pos+step)/segLen)

			if on && step > 0 {
				if len(current) == 0 {
					current = append(current, from)
				}
				current = append(current, to)
			}

			pos += step
			left -= step

			if left <= 0 {
				if on && len(current) > 0 {
					runs = append(runs, current)
					current = nil
				}
				idx = (idx + 1) % len(pattern)
				left = pattern[idx]
				on = !on
			}
		}
	}

	if len(current) > 1 {
		runs = append(runs, current)
	}

	return runs
}

func lerp(a, b domain.Point, t float64) domain.Point {
	return domain.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
