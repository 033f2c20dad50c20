// Package jlog is the package-level structured logger every other package
// in this module calls into for diagnostics that are not user-facing
// Diagnostic records: plugin-bridge round trips, pipeline pass counts,
// cache hits/misses. It defaults to a no-op logger so embedding this module
// as a library never writes anything a caller didn't ask for, the same
// posture codeNERD's CLI takes with zap (a real *zap.Logger is only built
// once a command actually starts, never at package init).
package jlog

import "go.uber.org/zap"

var logger = zap.NewNop()

// Install replaces the package logger, typically once at process startup
// (a CLI's PersistentPreRunE, or a test that wants to assert on log output).
// Passing nil restores the no-op logger.
func Install(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// L returns the current package logger.
func L() *zap.Logger {
	return logger
}

// Sync flushes any buffered log entries; callers should defer it after
// Install in long-running processes.
func Sync() error {
	return logger.Sync()
}
