package dto

type PointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RouteRequest struct {
	Points []PointDTO `json:"points"`
}

type RouteResponse struct {
	Path            []PointDTO `json:"path"`
	TotalDistance   float64    `json:"total_distance"`
	RoundedDistance int64      `json:"rounded_distance"`
}
