package main

import (
	"github.com/osse101/ShopKeeper_Go/internal/config"
	"github.com/osse101/ShopKeeper_Go/internal/logger"
)

// initLogger starts from the environment's logging defaults and applies
// whatever the app config sets explicitly
func initLogger(cfg *config.Config) {
	lc := logger.ForEnvironment(cfg.Environment)
	if cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		lc.Format = cfg.LogFormat
	}
	if cfg.ServiceName != "" {
		lc.ServiceName = cfg.ServiceName
	}
	if cfg.Version != "" {
		lc.Version = cfg.Version
	}

	logger.InitLogger(lc)
}
