package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the app in order:
//  1. HTTP server (stop accepting commands, end event streams, let in-flight
//     commands finish)
//  2. Autosave, when enabled, so the saved file includes the last command
//  3. SSE hub, a no-op unless the server never got to stop it
//
// Errors are logged and do not stop the sequence.
func (a *App) GracefulShutdown(ctx context.Context) {
	slog.Info(LogMsgShuttingDownServer)

	if err := a.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if a.Config.CatalogAutosave && a.Config.CatalogFile != "" {
		slog.Info(LogMsgAutosaving, "path", a.Config.CatalogFile)
		if err := a.Shop.ExportFile(ctx, a.Config.CatalogFile); err != nil {
			slog.Error(LogMsgAutosaveFailed, "path", a.Config.CatalogFile, "error", err)
		}
	}

	a.Hub.Stop()

	slog.Info(LogMsgShutdownComplete)
}
