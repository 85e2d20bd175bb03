// The api binary serves the reconciliation assistant over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianopnk-hub/nf-solver-web/internal/api"
	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/config"
	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/logging"
	"github.com/adrianopnk-hub/nf-solver-web/internal/infrastructure/storage"
	"github.com/adrianopnk-hub/nf-solver-web/internal/service"
	"github.com/adrianopnk-hub/nf-solver-web/internal/solver"
)

func main() {
	cfg := config.LoadOrEnv()
	logger := logging.NewLogger(cfg.Logging)

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("failed to open solve history", "path", cfg.Storage.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	recon := service.New(solver.Limits{MaxWidth: cfg.Solver.MaxWidth}, store,
		logging.NewLoggerWithSystem(cfg.Logging, "solver"))

	server := api.NewServer(api.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, recon, store, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}
