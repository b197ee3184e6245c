package bootstrap

// Log messages for startup and shutdown
const (
	LogMsgStarting             = "Starting ShopKeeper"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgConfigWarning        = "Configuration warning"
	LogMsgCatalogSeeded        = "Catalog loaded from file"
	LogMsgCatalogFileMissing   = "Catalog file not found, starting empty"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgAutosaving           = "Saving catalog before exit"
	LogMsgAutosaveFailed       = "Failed to save catalog on shutdown"
	LogMsgShutdownComplete     = "Shutdown complete"
)

// Error messages
const (
	ErrMsgSeedCatalogFmt = "failed to load catalog file %s: %w"
)
