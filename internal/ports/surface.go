package ports

import (
	"image/color"
	"route-sketch-service/internal/domain"
)

// Stroke parameters for polylines. An empty Dash draws a solid line.
type StrokeStyle struct {
	Color color.RGBA
	Width float64
	Dash  []float64
}

// Text parameters. Text is horizontally centred on its anchor point.
type TextStyle struct {
	Color  color.RGBA
	Font   string
	SizePx float64
}

// Surface is a 2D drawing target. Implementations translate these primitives
// to a concrete backend (SVG document, window framebuffer, test recorder).
type Surface interface {
	Size() (width, height float64)
	// Clear erases everything previously drawn.
	Clear()
	StrokePolyline(points []domain.Point, style StrokeStyle)
	FillPolygon(points []domain.Point, fill color.RGBA)
	// FillCircle draws a filled disc; glow > 0 adds a halo of that blur radius in the fill colour.
	FillCircle(center domain.Point, radius float64, fill color.RGBA, glow float64)
	FillText(text string, anchor domain.Point, style TextStyle)
}
