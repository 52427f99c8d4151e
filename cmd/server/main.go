package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"cosmos-server/internal/generation"
	"cosmos-server/internal/middleware"
	"cosmos-server/internal/server"
	"cosmos-server/internal/settings"
	"cosmos-server/internal/share"
	"cosmos-server/internal/shared/config"
	"cosmos-server/internal/shared/logger"
	"cosmos-server/internal/shared/telemetry"

	"go.opentelemetry.io/otel"
)

func main() {
	if err := config.Init(); err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Init()

	if err := run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.GlobalConfig
	log := slog.With("component", "main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presets := settings.BuiltinPresets()
	if cfg.Generation.PresetsPath != "" {
		loaded, err := settings.LoadPresets(cfg.Generation.PresetsPath)
		if err != nil {
			return err
		}
		presets = loaded
	}
	log.Info("Presets loaded", "presets", presets.Names())

	tp := telemetry.NewTracerProvider(ctx, cfg.Server.Environment, slog.Default())
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn("Failed to flush traces", "error", err)
		}
	}()

	generationService, err := generation.NewService(
		tp.Tracer(telemetry.ServiceName),
		otel.Meter(telemetry.ServiceName),
		slog.Default(),
	)
	if err != nil {
		return err
	}

	var shareService *share.Service
	if cfg.SharingEnabled() {
		shareService, err = share.NewService(cfg.Share.Secret, cfg.Share.Expiration, slog.Default())
		if err != nil {
			return err
		}
	} else {
		log.Info("SHARE_SECRET not set, share links disabled")
	}

	mux := server.NewRoutes(
		generationService,
		shareService,
		presets,
		cfg.Generation.MaxRequestBody,
		cfg.Server.StaticDir,
		slog.Default(),
	).Setup()

	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimit)
	cors := middleware.NewCORS(cfg.Frontend)

	var handler http.Handler = mux
	handler = rateLimiter.Middleware(handler)
	handler = cors.Middleware(handler)
	handler = middleware.RequestLog(handler)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Cosmos server starting",
			"port", cfg.Server.Port,
			"url", cfg.Server.URL,
			"environment", cfg.Server.Environment,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
