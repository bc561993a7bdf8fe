package core

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
)

// LogLevel represents logging severity levels.
// The numeric values leave room between levels so custom ones can be slotted in.
type LogLevel int8

const (
	// LogLevelTrace for very fine-grained diagnostic information
	LogLevelTrace LogLevel = 5
	// LogLevelDebug for detailed debug information
	LogLevelDebug LogLevel = 10
	// LogLevelInfo for general operational information
	LogLevelInfo LogLevel = 20
	// LogLevelSuccess for operations that completed as expected
	LogLevelSuccess LogLevel = 25
	// LogLevelWarn for warnings
	LogLevelWarn LogLevel = 30
	// LogLevelError for errors information
	LogLevelError LogLevel = 40
	// LogLevelCritical for failures the program cannot recover from on its own
	LogLevelCritical LogLevel = 50
)

// Well-known structured field keys
const (
	FieldError     = errs.KeyError
	FieldErrorType = errs.KeyErrorType
	FieldTraceback = errs.KeyTraceback
	FieldFunction  = "function"
)

var levelNames = map[LogLevel]string{
	LogLevelTrace:    "TRACE",
	LogLevelDebug:    "DEBUG",
	LogLevelInfo:     "INFO",
	LogLevelSuccess:  "SUCCESS",
	LogLevelWarn:     "WARNING",
	LogLevelError:    "ERROR",
	LogLevelCritical: "CRITICAL",
}

// AllLevels lists every supported level from least to most severe
func AllLevels() []LogLevel {
	return []LogLevel{
		LogLevelTrace,
		LogLevelDebug,
		LogLevelInfo,
		LogLevelSuccess,
		LogLevelWarn,
		LogLevelError,
		LogLevelCritical,
	}
}

// String returns the upper-case label of the level
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int8(l))
}

// Enabled reports whether a record at level passes a minimum of l
func (l LogLevel) Enabled(level LogLevel) bool {
	return level >= l
}

// ParseLogLevel converts a level name to a LogLevel
func ParseLogLevel(name string) (LogLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return LogLevelTrace, nil
	case "DEBUG":
		return LogLevelDebug, nil
	case "INFO":
		return LogLevelInfo, nil
	case "SUCCESS":
		return LogLevelSuccess, nil
	case "WARNING", "WARN":
		return LogLevelWarn, nil
	case "ERROR":
		return LogLevelError, nil
	case "CRITICAL", "FATAL":
		return LogLevelCritical, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidLogLevel, name)
	}
}

// Logger defines logging operations
type Logger interface {
	// SetLevel sets the minimum log level to output
	SetLevel(level LogLevel)
	// GetLevel gets the current log level
	GetLevel() LogLevel
	// Log emits a record at the given level
	Log(level LogLevel, message string, fields map[string]any)
	// Trace logs trace messages
	Trace(message string, fields map[string]any)
	// Debug logs debug messages
	Debug(message string, fields map[string]any)
	// Info logs informational messages
	Info(message string, fields map[string]any)
	// Success logs success messages
	Success(message string, fields map[string]any)
	// Warn logs warning messages
	Warn(message string, fields map[string]any)
	// Error logs errors messages
	Error(message string, fields map[string]any)
	// Critical logs critical messages
	Critical(message string, fields map[string]any)
	// Exception logs err with its type and traceback at error level.
	// It does nothing when err is nil.
	Exception(message string, err error, fields map[string]any)
	// Flush ensures all buffered logs are written to their destination
	Flush() error
}
