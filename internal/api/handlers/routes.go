package handlers

import (
	"net/http"
	"route-sketch-service/internal/api/dto"
	"route-sketch-service/internal/services"
)

// Largest point list accepted by the stateless endpoint.
const maxRoutePoints = 2000

// RouteHandler computes routes for caller-supplied points without touching
// the shared canvas.
type RouteHandler struct {
	Planner services.Planner
}

func (h *RouteHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if len(req.Points) > maxRoutePoints {
		writeError(w, r, http.StatusBadRequest, "too many points")
		return
	}

	for _, p := range req.Points {
		if !inRange(p.X, p.Y) {
			writeError(w, r, http.StatusBadRequest, "point coordinates must be within ±1e9")
			return
		}
	}

	result := h.Planner.Plan(r.Context(), req.DomainPoints())

	writeJSON(w, r, http.StatusOK, dto.FromRouteResult(result))
}
