package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/budgetbrew/budgetbrew-server/internal/catalog"
	"github.com/budgetbrew/budgetbrew-server/internal/config"
	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/budgetbrew/budgetbrew-server/internal/server"
)

func main() {
	// 1. Load configuration from environment variables.
	cfg := config.Load()
	logger := logging.NewLogger(cfg)

	// 2. Build the read-only catalogs once for the process lifetime.
	store := catalog.New()

	// 3. Set up the chi router with all handlers.
	handler := server.New(cfg, store, logger)

	// 4. Start the HTTP server.
	srv := &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	publicDir, err := filepath.Abs(cfg.PublicDir)
	if err != nil {
		publicDir = cfg.PublicDir
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("BudgetBrew server running",
			"url", "http://localhost:"+cfg.Port,
			"public_dir", publicDir,
			"images_dir", cfg.ImagesDir,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		logger.Error("server error", "error", err)
		os.Exit(1)
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
