package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"route-sketch-service/internal/adapters/surface"
	"route-sketch-service/internal/api/dto"
	"route-sketch-service/internal/domain"
	"route-sketch-service/internal/render"
	"route-sketch-service/internal/services"
	"sync"
)

// CanvasHandler exposes the single interactive canvas over HTTP.
// Requests are serialised so each operation runs to completion before the next.
type CanvasHandler struct {
	mu      sync.Mutex
	Canvas  *services.Canvas
	Planner services.Planner
}

func NewCanvasHandler(canvas *services.Canvas, planner services.Planner) *CanvasHandler {
	return &CanvasHandler{Canvas: canvas, Planner: planner}
}

func (h *CanvasHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, canvasResponse(snap))
}

// AddPoint places a point from a pointer click. Clicks outside the surface
// are ignored and reported with accepted=false.
func (h *CanvasHandler) AddPoint(w http.ResponseWriter, r *http.Request) {
	var req dto.AddPointRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !inRange(req.ClientX, req.ClientY, req.OriginX, req.OriginY) {
		writeError(w, r, http.StatusBadRequest, "coordinates must be within ±1e9")
		return
	}

	h.mu.Lock()
	accepted := h.Canvas.AddPointAt(req.ClientX, req.ClientY, domain.Point{X: req.OriginX, Y: req.OriginY})
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	res := canvasResponse(snap)
	res.Accepted = &accepted
	writeJSON(w, r, http.StatusOK, res)
}

// Calculate builds the route for the current points.
func (h *CanvasHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	ok := h.Canvas.Calculate(r.Context(), h.Planner)
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	if !ok {
		writeError(w, r, http.StatusConflict, "at least 3 points (depot + 2 stops) are required")
		return
	}

	slog.InfoContext(r.Context(), "route calculated",
		"points", len(snap.Points),
		"total_distance", snap.Route.TotalDistance,
	)
	writeJSON(w, r, http.StatusOK, canvasResponse(snap))
}

func (h *CanvasHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.Canvas.Reset()
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, canvasResponse(snap))
}

// Resize adopts a new container size. The stored route is kept and only redrawn.
func (h *CanvasHandler) Resize(w http.ResponseWriter, r *http.Request) {
	var req dto.ResizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Width <= 0 || req.Height < 0 {
		writeError(w, r, http.StatusBadRequest, "width must be positive and height non-negative")
		return
	}
	if !inRange(req.Width, req.Height) {
		writeError(w, r, http.StatusBadRequest, "width and height must be at most 1e9")
		return
	}

	h.mu.Lock()
	h.Canvas.Resize(req.Width, req.Height)
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	writeJSON(w, r, http.StatusOK, canvasResponse(snap))
}

// Scene renders the canvas as SVG.
func (h *CanvasHandler) Scene(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	snap := h.Canvas.Snapshot()
	h.mu.Unlock()

	s := surface.NewSVGSurface(snap.Width, snap.Height)
	render.Render(s, snap.Points, snap.Route.Path)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		slog.ErrorContext(r.Context(), "render scene failed", "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "write scene failed", "err", err)
	}
}

func canvasResponse(snap services.CanvasSnapshot) dto.CanvasResponse {
	return dto.CanvasResponse{
		State:        snap.State.String(),
		Status:       snap.Status,
		CanCalculate: snap.CanCalculate,
		Width:        snap.Width,
		Height:       snap.Height,
		Points:       dto.FromPoints(snap.Points),
		Route:        dto.FromRouteResult(snap.Route),
	}
}
