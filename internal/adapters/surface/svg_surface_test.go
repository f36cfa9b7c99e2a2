package surface

import (
	"bytes"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/render"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"
)

func renderSVG(t *testing.T, s *SVGSurface) *etree.Document {
	t.Helper()

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))
	return doc
}

func TestSVGSurfaceRendersScene(t *testing.T) {
	points := []domain.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	route := domain.Route{points[0], points[1], points[2], points[3], points[0]}
	s := NewSVGSurface(800, 400)

	render.Render(s, points, route)
	doc := renderSVG(t, s)

	root := doc.Root()
	require.Equal(t, "svg", root.Tag)
	require.Equal(t, "800", root.SelectAttrValue("width", ""))
	require.Equal(t, "400", root.SelectAttrValue("height", ""))

	lines := doc.FindElements("//polyline")
	require.Len(t, lines, 1)
	require.Equal(t, "10,5", lines[0].SelectAttrValue("stroke-dasharray", ""))
	require.Equal(t, "#ffcc00", lines[0].SelectAttrValue("stroke", ""))
	require.Equal(t, "0,0 10,0 10,10 0,10 0,0", lines[0].SelectAttrValue("points", ""))

	require.Len(t, doc.FindElements("//polygon"), 4)

	circles := doc.FindElements("//circle")
	require.Len(t, circles, 4)
	require.Equal(t, "#ff0000", circles[0].SelectAttrValue("fill", ""))
	require.Equal(t, "#0d9488", circles[1].SelectAttrValue("fill", ""))

	// One glow filter per marker colour.
	require.Len(t, doc.FindElements("//filter"), 2)

	texts := doc.FindElements("//text")
	require.Len(t, texts, 4)
	require.Equal(t, "Depot", texts[0].Text())
	require.Equal(t, "-15", texts[0].SelectAttrValue("y", ""))
	require.Equal(t, "P3", texts[3].Text())
}

func TestSVGSurfaceClearStartsOver(t *testing.T) {
	points := []domain.Point{{X: 1, Y: 1}, {X: 5, Y: 5}}
	s := NewSVGSurface(100, 100)

	render.Render(s, points, domain.Route{points[0], points[1], points[0]})
	render.Render(s, points, nil)
	doc := renderSVG(t, s)

	require.Empty(t, doc.FindElements("//polyline"))
	require.Empty(t, doc.FindElements("//polygon"))
	require.Len(t, doc.FindElements("//circle"), 2)
}
