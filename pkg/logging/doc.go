// Package logging provides structured logging setup for crxcheck.
//
// # Overview
//
// Logs are JSON records written to stderr through the standard library slog
// package. Every record carries the module name and tool version. Debug
// level also records the source location of the call.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-check diagnostics with source location
//   - INFO: run progress (default when LOG_LEVEL is unset)
//   - WARN/WARNING: non-fatal problems such as close failures
//   - ERROR: failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	logging.SetDefaultStructuredLoggerWithLevel("crxcheck", version, "warn")
//	slog.Info("checking manifest", "path", path)
//
// The CLI reads the level from --log-level or LOG_LEVEL:
//
//	LOG_LEVEL=debug crxcheck check-version 1.2.3-SNAPSHOT manifest.json pom.xml
//
// Output looks like:
//
//	{"time":"2026-01-15T10:30:00.123Z","level":"INFO","msg":"checking manifest","module":"crxcheck","version":"v1.0.0","path":"manifest.json"}
//
// Logging always goes to stderr so that reports written to stdout stay
// machine readable.
package logging
