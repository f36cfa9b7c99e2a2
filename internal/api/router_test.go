package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"route-sketch-service/internal/api/dto"
	"route-sketch-service/internal/services"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() http.Handler {
	return NewRouter(services.NewRoutePlanner(nil), services.NewCanvas(800, 600))
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeCanvas(t *testing.T, rec *httptest.ResponseRecorder) dto.CanvasResponse {
	t.Helper()

	var res dto.CanvasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestComputeRoute(t *testing.T) {
	body := dto.RouteRequest{Points: []dto.PointDTO{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}}

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res dto.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 40.0, res.TotalDistance, 1e-9)
	assert.EqualValues(t, 40, res.RoundedDistance)
	require.Len(t, res.Path, 5)
	assert.Equal(t, res.Path[0], res.Path[4])
	assert.Equal(t, dto.PointDTO{X: 10, Y: 0}, res.Path[1])
}

func TestComputeRouteDegenerate(t *testing.T) {
	body := dto.RouteRequest{Points: []dto.PointDTO{{X: 3, Y: 4}}}

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"path":[],"total_distance":0,"rounded_distance":0}`, rec.Body.String())
}

func TestComputeRouteRejectsBadBodies(t *testing.T) {
	h := newTestRouter()

	for name, raw := range map[string]string{
		"malformed":     `{"points":`,
		"unknown field": `{"points":[],"extra":1}`,
		"two objects":   `{"points":[]}{"points":[]}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(raw))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestComputeRouteRejectsHugeCoordinates(t *testing.T) {
	body := dto.RouteRequest{Points: []dto.PointDTO{{X: 0, Y: 0}, {X: 1e200, Y: 0}, {X: -1e200, Y: 0}}}

	rec := do(t, newTestRouter(), http.MethodPost, "/routes", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/routes", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCanvasFlow(t *testing.T) {
	h := newTestRouter()

	res := decodeCanvas(t, do(t, h, http.MethodGet, "/canvas", nil))
	assert.Equal(t, "empty", res.State)
	assert.Equal(t, "Current Points: 0", res.Status)
	assert.False(t, res.CanCalculate)
	assert.Empty(t, res.Points)

	click := func(x, y float64) dto.CanvasResponse {
		rec := do(t, h, http.MethodPost, "/canvas/points", dto.AddPointRequest{ClientX: x, ClientY: y, OriginX: 100, OriginY: 50})
		require.Equal(t, http.StatusOK, rec.Code)
		return decodeCanvas(t, rec)
	}

	res = click(100, 50)
	require.NotNil(t, res.Accepted)
	assert.True(t, *res.Accepted)
	assert.Equal(t, "Current Points: 1", res.Status)
	assert.Equal(t, []dto.PointDTO{{X: 0, Y: 0}}, res.Points)

	res = click(130, 50)
	assert.Equal(t, "Current Points: 2. Ready to calculate route.", res.Status)
	assert.False(t, res.CanCalculate)

	rec := do(t, h, http.MethodPost, "/canvas/route", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	res = click(130, 90)
	assert.True(t, res.CanCalculate)

	rec = do(t, h, http.MethodPost, "/canvas/route", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	res = decodeCanvas(t, rec)
	assert.Equal(t, "route_ready", res.State)
	assert.Equal(t, "Route Calculated. Distance: 120 units.", res.Status)
	assert.Len(t, res.Route.Path, 4)
	assert.InDelta(t, 120.0, res.Route.TotalDistance, 1e-9)

	// a new point invalidates the route
	res = click(150, 150)
	assert.Equal(t, "collecting", res.State)
	assert.Empty(t, res.Route.Path)

	res = decodeCanvas(t, do(t, h, http.MethodDelete, "/canvas", nil))
	assert.Equal(t, "empty", res.State)
	assert.Empty(t, res.Points)
}

func TestCanvasIgnoresClicksOutsideSurface(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPost, "/canvas/points", dto.AddPointRequest{ClientX: 50, ClientY: 60, OriginX: 100, OriginY: 50})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeCanvas(t, rec)
	require.NotNil(t, res.Accepted)
	assert.False(t, *res.Accepted)
	assert.Empty(t, res.Points)
}

func TestCanvasResizeEnforcesMinimumHeight(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPut, "/canvas/size", dto.ResizeRequest{Width: 500, Height: 100})
	require.Equal(t, http.StatusOK, rec.Code)

	res := decodeCanvas(t, rec)
	assert.Equal(t, 500.0, res.Width)
	assert.Equal(t, 400.0, res.Height)

	rec = do(t, h, http.MethodPut, "/canvas/size", dto.ResizeRequest{Width: 0, Height: 100})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCanvasRejectsHugeSizesAndClicks(t *testing.T) {
	h := newTestRouter()

	rec := do(t, h, http.MethodPut, "/canvas/size", dto.ResizeRequest{Width: 1e200, Height: 600})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/canvas/points", dto.AddPointRequest{ClientX: 1e200, ClientY: 10})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	res := decodeCanvas(t, do(t, h, http.MethodGet, "/canvas", nil))
	assert.Equal(t, 800.0, res.Width)
	assert.Empty(t, res.Points)
}

func TestCanvasScene(t *testing.T) {
	h := newTestRouter()

	for _, p := range [][2]float64{{10, 10}, {40, 10}, {40, 50}} {
		do(t, h, http.MethodPost, "/canvas/points", dto.AddPointRequest{ClientX: p[0], ClientY: p[1]})
	}
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/canvas/route", nil).Code)

	rec := do(t, h, http.MethodGet, "/canvas/scene.svg", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(rec.Body.Bytes()))

	root := doc.SelectElement("svg")
	require.NotNil(t, root)
	assert.Equal(t, "800", root.SelectAttrValue("width", ""))
	assert.Len(t, doc.FindElements("//circle"), 3)
	assert.Len(t, doc.FindElements("//polyline"), 1)
	assert.Len(t, doc.FindElements("//polygon"), 3)

	var labels []string
	for _, el := range doc.FindElements("//text") {
		labels = append(labels, el.Text())
	}
	assert.Equal(t, []string{"Depot", "P1", "P2"}, labels)
}

func TestIndexPage(t *testing.T) {
	rec := do(t, newTestRouter(), http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/canvas/scene.svg")

	rec = do(t, newTestRouter(), http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
