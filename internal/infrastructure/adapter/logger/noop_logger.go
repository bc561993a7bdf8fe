package logger

import (
	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

// NoopLogger implements the Logger interface but doesn't do anything
// Useful for testing or when logging is disabled
type NoopLogger struct {
	level core.LogLevel
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	return &NoopLogger{
		level: core.LogLevelInfo,
	}
}

// SetLevel sets the minimum log level to output
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level = level
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return l.level
}

// Log discards the message
func (l *NoopLogger) Log(core.LogLevel, string, map[string]any) {}

// Trace discards trace messages
func (l *NoopLogger) Trace(string, map[string]any) {}

// Debug discards debug messages
func (l *NoopLogger) Debug(string, map[string]any) {}

// Info discards informational messages
func (l *NoopLogger) Info(string, map[string]any) {}

// Success discards success messages
func (l *NoopLogger) Success(string, map[string]any) {}

// Warn discards warning messages
func (l *NoopLogger) Warn(string, map[string]any) {}

// Error discards error messages
func (l *NoopLogger) Error(string, map[string]any) {}

// Critical discards critical messages
func (l *NoopLogger) Critical(string, map[string]any) {}

// Exception discards the error and its details
func (l *NoopLogger) Exception(string, error, map[string]any) {}

// Flush ensures all buffered logs are written to their destination
func (l *NoopLogger) Flush() error {
	// No-op implementation doesn't need to flush anything
	return nil
}
