// Package render draws points and routes onto a ports.Surface.
package render

import (
	"fmt"
	"image/color"
	"math"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/ports"
)

const (
	PointRadius     = 8.0
	PointGlow       = 10.0
	RouteLineWidth  = 3.0
	ArrowSize       = 12.0
	ArrowSpread     = math.Pi / 7
	LabelOffsetY    = 15.0
	LabelFontSizePx = 14.0
	LabelFont       = "Inter"
)

var (
	DepotColor = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	StopColor  = color.RGBA{R: 0x0d, G: 0x94, B: 0x88, A: 0xff}
	RouteColor = color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff}
	LabelColor = color.RGBA{R: 0xf9, G: 0xf9, B: 0xf9, A: 0xff}

	RouteDash = []float64{10, 5}
)

// Render clears the surface and repaints the route (when it has at least two
// points) followed by every point marker and label. It keeps no state between calls.
func Render(s ports.Surface, points []domain.Point, route domain.Route) {
	s.Clear()

	if len(route) >= 2 {
		s.StrokePolyline(route, ports.StrokeStyle{
			Color: RouteColor,
			Width: RouteLineWidth,
			Dash:  RouteDash,
		})

		for i := 0; i+1 < len(route); i++ {
			s.FillPolygon(Arrowhead(route[i], route[i+1]), RouteColor)
		}
	}

	labelStyle := ports.TextStyle{Color: LabelColor, Font: LabelFont, SizePx: LabelFontSizePx}
	for i, p := range points {
		fill := StopColor
		if domain.IsDepot(i) {
			fill = DepotColor
		}

		s.FillCircle(p, PointRadius, fill, PointGlow)
		s.FillText(Label(i), domain.Point{X: p.X, Y: p.Y - LabelOffsetY}, labelStyle)
	}
}

// Label names a point by its position in the point set.
func Label(index int) string {
	if domain.IsDepot(index) {
		return "Depot"
	}
	return fmt.Sprintf("P%d", index)
}

// Arrowhead returns the triangle marking the direction a->b. Its tip sits on
// the segment midpoint and its wings trail back along the segment.
func Arrowhead(a, b domain.Point) []domain.Point {
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	mid := domain.Midpoint(a, b)

	return []domain.Point{
		mid,
		{
			X: mid.X - ArrowSize*math.Cos(angle-ArrowSpread),
			Y: mid.Y - ArrowSize*math.Sin(angle-ArrowSpread),
		},
		{
			X: mid.X - ArrowSize*math.Cos(angle+ArrowSpread),
			Y: mid.Y - ArrowSize*math.Sin(angle+ArrowSpread),
		},
	}
}
