package api

import (
	"net/http"
	"route-sketch-service/internal/api/handlers"
	"route-sketch-service/internal/platform/metrics"
	"route-sketch-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(planner services.Planner, canvas *services.Canvas) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Planner: planner}
	canvasHandler := handlers.NewCanvasHandler(canvas, planner)

	mux.HandleFunc("GET /health", handlers.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	mux.HandleFunc("POST /routes", routeHandler.Compute)

	mux.HandleFunc("GET /canvas", canvasHandler.Get)
	mux.HandleFunc("DELETE /canvas", canvasHandler.Reset)
	mux.HandleFunc("POST /canvas/points", canvasHandler.AddPoint)
	mux.HandleFunc("POST /canvas/route", canvasHandler.Calculate)
	mux.HandleFunc("PUT /canvas/size", canvasHandler.Resize)
	mux.HandleFunc("GET /canvas/scene.svg", canvasHandler.Scene)

	mux.HandleFunc("GET /{$}", handlers.Index)

	return requestIDMiddleware(loggingMiddleware(mux))
}
