package surface

import (
	"fmt"
	"image/color"
	"io"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/ports"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// SVGSurface renders drawing primitives into an SVG document.
// Glow halos are drop-shadow filters registered once per colour.
type SVGSurface struct {
	width  float64
	height float64
	doc    *etree.Document
	defs   *etree.Element
	scene  *etree.Element
	glows  map[string]string
}

var _ ports.Surface = (*SVGSurface)(nil)

func NewSVGSurface(width, height float64) *SVGSurface {
	s := &SVGSurface{width: width, height: height}
	s.Clear()
	return s
}

func (s *SVGSurface) Size() (width, height float64) { return s.width, s.height }

// Clear discards the current document and starts an empty one.
func (s *SVGSurface) Clear() {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", num(s.width))
	root.CreateAttr("height", num(s.height))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %s %s", num(s.width), num(s.height)))

	s.doc = doc
	s.defs = root.CreateElement("defs")
	s.scene = root.CreateElement("g")
	s.glows = make(map[string]string)
}

func (s *SVGSurface) StrokePolyline(points []domain.Point, style ports.StrokeStyle) {
	if len(points) < 2 {
		return
	}

	el := s.scene.CreateElement("polyline")
	el.CreateAttr("points", pointList(points))
	el.CreateAttr("fill", "none")
	el.CreateAttr("stroke", hex(style.Color))
	el.CreateAttr("stroke-width", num(style.Width))
	el.CreateAttr("stroke-linejoin", "miter")
	if len(style.Dash) > 0 {
		parts := make([]string, 0, len(style.Dash))
		for _, d := range style.Dash {
			parts = append(parts, num(d))
		}
		el.CreateAttr("stroke-dasharray", strings.Join(parts, ","))
	}
}

func (s *SVGSurface) FillPolygon(points []domain.Point, fill color.RGBA) {
	if len(points) < 3 {
		return
	}

	el := s.scene.CreateElement("polygon")
	el.CreateAttr("points", pointList(points))
	el.CreateAttr("fill", hex(fill))
}

func (s *SVGSurface) FillCircle(center domain.Point, radius float64, fill color.RGBA, glow float64) {
	el := s.scene.CreateElement("circle")
	el.CreateAttr("cx", num(center.X))
	el.CreateAttr("cy", num(center.Y))
	el.CreateAttr("r", num(radius))
	el.CreateAttr("fill", hex(fill))
	if glow > 0 {
		el.CreateAttr("filter", "url(#"+s.glowFilter(fill, glow)+")")
	}
}

func (s *SVGSurface) FillText(text string, anchor domain.Point, style ports.TextStyle) {
	el := s.scene.CreateElement("text")
	el.CreateAttr("x", num(anchor.X))
	el.CreateAttr("y", num(anchor.Y))
	el.CreateAttr("fill", hex(style.Color))
	el.CreateAttr("font-family", style.Font)
	el.CreateAttr("font-size", num(style.SizePx)+"px")
	el.CreateAttr("text-anchor", "middle")
	el.SetText(text)
}

// WriteTo serialises the current document.
func (s *SVGSurface) WriteTo(w io.Writer) (int64, error) {
	s.doc.Indent(2)
	n, err := s.doc.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("write svg: %w", err)
	}
	return n, nil
}

// glowFilter returns the id of a drop-shadow filter for the colour and blur.
// A canvas shadow blur b corresponds roughly to a gaussian deviation of b/2.
func (s *SVGSurface) glowFilter(c color.RGBA, blur float64) string {
	key := hex(c) + "/" + num(blur)
	if id, ok := s.glows[key]; ok {
		return id
	}

	id := fmt.Sprintf("glow-%d", len(s.glows))
	f := s.defs.CreateElement("filter")
	f.CreateAttr("id", id)
	f.CreateAttr("x", "-100%")
	f.CreateAttr("y", "-100%")
	f.CreateAttr("width", "300%")
	f.CreateAttr("height", "300%")

	shadow := f.CreateElement("feDropShadow")
	shadow.CreateAttr("dx", "0")
	shadow.CreateAttr("dy", "0")
	shadow.CreateAttr("stdDeviation", num(blur/2))
	shadow.CreateAttr("flood-color", hex(c))

	s.glows[key] = id
	return id
}

func pointList(points []domain.Point) string {
	var b strings.Builder
	for i, p := range points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(num(p.X))
		b.WriteByte(',')
		b.WriteString(num(p.Y))
	}
	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
