package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Validate checks that every setting is usable. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgPortRangeFmt, EnvPort, c.Port))
	}
	if !slices.Contains(ValidLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf(ErrMsgLogLevelFmt, EnvLogLevel, strings.Join(ValidLogLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(ValidLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf(ErrMsgLogFormatFmt, EnvLogFormat, strings.Join(ValidLogFormats, ", "), c.LogFormat))
	}
	if c.MaxRequestBytes <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgMaxRequestBytesFmt, EnvMaxRequestBytes, c.MaxRequestBytes))
	}
	if strings.TrimSpace(c.CatalogDir) == "" {
		errs = append(errs, fmt.Errorf(ErrMsgCatalogDirEmptyFmt, EnvCatalogDir))
	}
	if c.CatalogFile != "" && !filepath.IsLocal(c.CatalogFile) {
		errs = append(errs, fmt.Errorf(ErrMsgCatalogFileFmt, EnvCatalogFile, EnvCatalogDir, c.CatalogFile))
	}
	if c.CatalogAutosave && c.CatalogFile == "" {
		errs = append(errs, fmt.Errorf(ErrMsgAutosaveNoFileFmt, EnvCatalogAutosave, EnvCatalogFile))
	}
	if c.SSEKeepalive <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgDurationFmt, EnvSSEKeepalive, c.SSEKeepalive))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgDurationFmt, EnvShutdownTimeout, c.ShutdownTimeout))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that are valid but probably not intended
func (c *Config) Warnings() []string {
	var warnings []string
	if c.APIKey == "" && c.Environment == EnvironmentProduction {
		warnings = append(warnings, WarnMsgNoAPIKeyProduction)
	}
	return warnings
}
