package dto

import "route-sketch-service/internal/domain"

func FromPoints(points []domain.Point) []PointDTO {
	out := make([]PointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, PointDTO{X: p.X, Y: p.Y})
	}
	return out
}

func (r RouteRequest) DomainPoints() []domain.Point {
	out := make([]domain.Point, 0, len(r.Points))
	for _, p := range r.Points {
		out = append(out, domain.Point{X: p.X, Y: p.Y})
	}
	return out
}

func FromRouteResult(r domain.RouteResult) RouteResponse {
	return RouteResponse{
		Path:            FromPoints(r.Path),
		TotalDistance:   r.TotalDistance,
		RoundedDistance: r.RoundedDistance(),
	}
}
