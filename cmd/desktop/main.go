package main

import (
	"context"
	"log/slog"
	"os"
	"route-sketch-service/internal/adapters/cache"
	"route-sketch-service/internal/adapters/window"
	"route-sketch-service/internal/config"
	"route-sketch-service/internal/platform/logging"
	"route-sketch-service/internal/services"
)

// main opens the canvas in a native window: click to place points,
// C to calculate the route, R to reset.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	routeCache, closeCache, err := cache.Open(context.Background(), cfg.Cache)
	if err != nil {
		slog.Error("open route cache", "driver", cfg.Cache.Driver, "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeCache(); err != nil {
			slog.Warn("close route cache", "err", err)
		}
	}()

	canvas := services.NewCanvas(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	game := window.NewGame(canvas, services.NewRoutePlanner(routeCache))

	if err := window.Run("Route Sketch", game); err != nil {
		slog.Error("window closed with error", "err", err)
		os.Exit(1)
	}
}
