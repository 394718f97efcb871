// Package validation provides common validation utilities.
package validation

import (
	"fmt"

	"github.com/iwvelando/finance-calc/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}

// ValidateLogLevel checks the level is one the logger understands.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("expected log level of debug, info, warn or error, got %s", level)
	}
}

// ValidateLogFormat checks the encoder name.
func ValidateLogFormat(format string) error {
	if format != "json" && format != "console" {
		return fmt.Errorf("expected log format of json or console, got %s", format)
	}
	return nil
}

// ValidateCacheBackend checks the cache backend name.
func ValidateCacheBackend(backend string) error {
	if backend != constants.CacheBackendMemory && backend != constants.CacheBackendRedis {
		return fmt.Errorf("expected cache backend of %s or %s, got %s",
			constants.CacheBackendMemory, constants.CacheBackendRedis, backend)
	}
	return nil
}
