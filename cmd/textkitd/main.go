package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/textkit/internal/textkit/server"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
	"github.com/msto63/textkit/pkg/core/version"
)

// healthInterval is how often the health checks are re-published
const healthInterval = 30 * time.Second

func main() {
	// Load configuration
	cfg, err := config.LoadOrDefault()
	if err != nil {
		logging.New("textkitd").Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := logging.Wrap(logging.FromConfig(cfg.General), "textkitd")
	logger.Info("Starting TextKit daemon", "version", version.String("textkitd"))

	// Create server
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	// Start server
	if err := srv.StartAsync(); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	logger.Info("TextKit server started", "address", cfg.ServerAddress())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Re-publish health until shutdown
	ticker := time.NewTicker(healthInterval)
	defer ticker.Stop()

wait:
	for {
		select {
		case <-ctx.Done():
			break wait
		case <-ticker.C:
			srv.RefreshHealth(ctx)
		}
	}

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()
	srv.Stop(shutdownCtx)

	logger.Info("TextKit server stopped")
}
