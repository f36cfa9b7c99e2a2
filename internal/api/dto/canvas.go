package dto

// Pointer click in screen coordinates plus the surface's top-left corner.
type AddPointRequest struct {
	ClientX float64 `json:"client_x"`
	ClientY float64 `json:"client_y"`
	OriginX float64 `json:"origin_x"`
	OriginY float64 `json:"origin_y"`
}

type ResizeRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type CanvasResponse struct {
	State        string        `json:"state"`
	Status       string        `json:"status"`
	CanCalculate bool          `json:"can_calculate"`
	Width        float64       `json:"width"`
	Height       float64       `json:"height"`
	Points       []PointDTO    `json:"points"`
	Route        RouteResponse `json:"route"`
	// Accepted is set on point placement; false means the click was outside the surface.
	Accepted *bool `json:"accepted,omitempty"`
}
