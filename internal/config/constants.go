package config

import "time"

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvCatalogDir      = "CATALOG_DIR"
	EnvCatalogFile     = "CATALOG_FILE"
	EnvCatalogAutosave = "CATALOG_AUTOSAVE"
	EnvMaxRequestBytes = "MAX_REQUEST_BYTES"
	EnvSSEKeepalive    = "SSE_KEEPALIVE"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Defaults
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "shopkeeper"
	DefaultVersion         = "dev"
	DefaultCatalogDir      = "data"
	DefaultMaxRequestBytes = 1 << 20
	DefaultSSEKeepalive    = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Accepted values
var (
	ValidLogLevels  = []string{"debug", "info", "warn", "error"}
	ValidLogFormats = []string{"text", "json"}
)

// EnvironmentProduction turns missing-API-key into a warning worth reading
const EnvironmentProduction = "production"

// Error messages
const (
	ErrMsgInvalidPortFmt      = "invalid %s value: %w"
	ErrMsgPortRangeFmt        = "%s must be between 1 and 65535, got %d"
	ErrMsgLogLevelFmt         = "%s must be one of %s, got %q"
	ErrMsgLogFormatFmt        = "%s must be one of %s, got %q"
	ErrMsgMaxRequestBytesFmt  = "%s must be positive, got %d"
	ErrMsgAutosaveNoFileFmt   = "%s requires %s to be set"
	ErrMsgCatalogDirEmptyFmt  = "%s must not be empty"
	ErrMsgCatalogFileFmt      = "%s must be a relative path inside %s, got %q"
	ErrMsgDurationFmt         = "%s must be positive, got %s"
	WarnMsgNoAPIKeyProduction = "API_KEY is empty in production - the /api/v1 routes are unauthenticated"
)
