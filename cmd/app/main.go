package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/ShopKeeper_Go/internal/bootstrap"
	"github.com/osse101/ShopKeeper_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStarting, "version", cfg.Version, "environment", cfg.Environment)
	slog.Info(bootstrap.LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"catalog_dir", cfg.CatalogDir,
		"catalog_file", cfg.CatalogFile,
		"autosave", cfg.CatalogAutosave)
	for _, w := range cfg.Warnings() {
		slog.Warn(bootstrap.LogMsgConfigWarning, "warning", w)
	}

	app, err := bootstrap.Build(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.SeedCatalog(ctx); err != nil {
		slog.Error("Failed to seed catalog", "error", err)
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	app.GracefulShutdown(shutdownCtx)
}
