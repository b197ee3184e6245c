// Package bootstrap wires the shop's components together and tears them
// down in order.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/osse101/ShopKeeper_Go/internal/catalog"
	"github.com/osse101/ShopKeeper_Go/internal/config"
	"github.com/osse101/ShopKeeper_Go/internal/event"
	"github.com/osse101/ShopKeeper_Go/internal/item"
	"github.com/osse101/ShopKeeper_Go/internal/metrics"
	"github.com/osse101/ShopKeeper_Go/internal/server"
	"github.com/osse101/ShopKeeper_Go/internal/shop"
	"github.com/osse101/ShopKeeper_Go/internal/sse"
)

// App holds the running components
type App struct {
	Config *config.Config
	Bus    *event.MemoryBus
	Hub    *sse.Hub
	Shop   shop.Service
	Server *server.Server
}

// Build creates every component and registers the bus observers. The SSE
// hub is started; the HTTP server is not.
func Build(cfg *config.Config) (*App, error) {
	bus := event.NewMemoryBus()

	if err := metrics.NewEventMetricsCollector().Register(bus); err != nil {
		return nil, err
	}

	hub := sse.NewHub(cfg.SSEKeepalive)
	sse.NewSubscriber(hub, bus).Subscribe()
	hub.Start()

	shopService := shop.NewService(catalog.New(), bus, item.NewLoader(cfg.CatalogDir))

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
		Version:         cfg.Version,
	}, shopService, hub)

	return &App{
		Config: cfg,
		Bus:    bus,
		Hub:    hub,
		Shop:   shopService,
		Server: srv,
	}, nil
}

// SeedCatalog imports the configured catalog file from the catalog
// directory. A missing file is not an error, so the first run starts with an
// empty shop.
func (a *App) SeedCatalog(ctx context.Context) error {
	name := a.Config.CatalogFile
	if name == "" {
		return nil
	}

	path, err := item.ResolvePath(a.Config.CatalogDir, name)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		slog.Info(LogMsgCatalogFileMissing, "path", path)
		return nil
	}

	items, err := a.Shop.ImportFile(ctx, name)
	if err != nil {
		return fmt.Errorf(ErrMsgSeedCatalogFmt, path, err)
	}
	slog.Info(LogMsgCatalogSeeded, "path", path, "count", len(items))
	return nil
}
