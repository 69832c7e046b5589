package slogobs

import (
	"log/slog"
	"os"
	"strings"
)

// Format represents the output format for logs.
type Format string

const (
	// FormatText is a single-line key=value format (default for development).
	FormatText Format = "text"

	// FormatJSON is standard JSON format (for production/log aggregation).
	FormatJSON Format = "json"
)

// ParseFormat parses a format string and returns the corresponding Format.
// If the format is invalid, it returns FormatText (default).
func ParseFormat(s string) Format {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "json":
		return FormatJSON
	default:
		return FormatText
	}
}

// GetFormatFromEnv retrieves the log format from environment variables.
// It checks SIFT_LOG_FORMAT first, then falls back to LOG_FORMAT.
// If neither is set, it returns FormatText (default).
func GetFormatFromEnv() Format {
	if format := os.Getenv("SIFT_LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		return ParseFormat(format)
	}
	return FormatText
}

// ParseLevel parses a level string ("debug", "info", "warn", "error") and
// returns the corresponding slog.Level. Invalid input maps to info.
func ParseLevel(s string) slog.Level {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "debug", "trace":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLevelFromEnv retrieves the log level from environment variables.
// It checks SIFT_LOG_LEVEL first, then falls back to LOG_LEVEL.
// If neither is set, it returns slog.LevelInfo.
func GetLevelFromEnv() slog.Level {
	if level := os.Getenv("SIFT_LOG_LEVEL"); level != "" {
		return ParseLevel(level)
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return ParseLevel(level)
	}
	return slog.LevelInfo
}
