package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"route-sketch-service/internal/adapters/cache"
	"route-sketch-service/internal/api"
	"route-sketch-service/internal/config"
	"route-sketch-service/internal/platform/logging"
	"route-sketch-service/internal/services"
	"strconv"
	"syscall"
	"time"
)

// main is the application composition root.
// It wires the configured route cache behind the planner and starts the HTTP server.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routeCache, closeCache, err := cache.Open(ctx, cfg.Cache)
	if err != nil {
		slog.Error("open route cache", "driver", cfg.Cache.Driver, "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeCache(); err != nil {
			slog.Warn("close route cache", "err", err)
		}
	}()

	planner := services.NewRoutePlanner(routeCache)
	canvas := services.NewCanvas(float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
	router := api.NewRouter(planner, canvas)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "cache", cfg.Cache.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown", "err", err)
	}
}
