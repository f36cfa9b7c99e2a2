package window

import (
	"image"
	"image/color"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/ports"
	"route-sketch-service/internal/render"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Glyph cell of the ebitenutil debug font.
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

var (
	whiteOnce sync.Once
	whiteImg  *ebiten.Image
)

// whiteSubImage is the 1x1 source texture for solid-colour triangles.
func whiteSubImage() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteImg = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteImg
}

// EbitenSurface draws onto an ebiten image, typically the window screen.
// Dashes are expanded on the CPU and text uses the built-in debug font, so
// font family and size are not honoured.
type EbitenSurface struct {
	dst        *ebiten.Image
	background color.RGBA
}

var _ ports.Surface = (*EbitenSurface)(nil)

// NewEbitenSurface wraps dst. Clear fills it with background; a fully
// transparent background clears to transparent.
func NewEbitenSurface(dst *ebiten.Image, background color.RGBA) *EbitenSurface {
	return &EbitenSurface{dst: dst, background: background}
}

func (s *EbitenSurface) Size() (width, height float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *EbitenSurface) Clear() {
	if s.background.A == 0 {
		s.dst.Clear()
		return
	}
	s.dst.Fill(s.background)
}

func (s *EbitenSurface) StrokePolyline(points []domain.Point, style ports.StrokeStyle) {
	for _, run := range render.DashSegments(points, style.Dash) {
		for i := 1; i < len(run); i++ {
			a, b := run[i-1], run[i]
			vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(style.Width), style.Color, true)
		}
	}
}

// FillPolygon fills a convex polygon as a triangle fan.
func (s *EbitenSurface) FillPolygon(points []domain.Point, fill color.RGBA) {
	if len(points) < 3 {
		return
	}

	r, g, b, a := float32(fill.R)/0xff, float32(fill.G)/0xff, float32(fill.B)/0xff, float32(fill.A)/0xff
	vertices := make([]ebiten.Vertex, 0, len(points))
	for _, p := range points {
		vertices = append(vertices, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}

	indices := make([]uint16, 0, 3*(len(points)-2))
	for i := 1; i+1 < len(points); i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}

	s.dst.DrawTriangles(vertices, indices, whiteSubImage(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// FillCircle approximates the halo with concentric translucent discs.
func (s *EbitenSurface) FillCircle(center domain.Point, radius float64, fill color.RGBA, glow float64) {
	cx, cy := float32(center.X), float32(center.Y)

	const rings = 4
	if glow > 0 {
		for i := rings; i >= 1; i-- {
			spread := float32(glow) * float32(i) / rings
			vector.DrawFilledCircle(s.dst, cx, cy, float32(radius)+spread, withAlpha(fill, 0x18), true)
		}
	}
	vector.DrawFilledCircle(s.dst, cx, cy, float32(radius), fill, true)
}

func (s *EbitenSurface) FillText(text string, anchor domain.Point, style ports.TextStyle) {
	x := int(anchor.X) - len(text)*debugGlyphWidth/2
	y := int(anchor.Y) - debugGlyphHeight*3/4
	ebitenutil.DebugPrintAt(s.dst, text, x, y)
}

// withAlpha returns c at alpha a with premultiplied channels.
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(a) / 0xff) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: a}
}
