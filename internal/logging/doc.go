// Package logging assembles structured slog loggers and formatting helpers used
// across lomtag.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. Logs default to stderr so that stdout stays reserved for
// reports and JSON command output; a log file can be added alongside. The
// package also provides a no-op logger for tests and wiring code that cannot
// fail.
package logging
