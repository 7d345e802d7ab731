// Package logging assembles structured slog loggers and formatting helpers
// used across the concordance tool.
//
// It owns the configurable console/JSON handlers and output plumbing, and
// exposes attribute helpers so commands tag log lines with the same keys
// (component, run_id, input). Logs are written to stderr by default because
// stdout carries concordance reports. The package also provides a no-op
// logger for tests and wiring code that cannot fail.
package logging
