package logger

import (
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
	timeProvider "github.com/amirhossein-jamali/logging-demo/internal/infrastructure/adapter/time"
)

// Sink targets that write to the process streams instead of a file
const (
	SinkStdout = "stdout"
	SinkStderr = "stderr"
)

// zap reserves levels 3..5 for DPanic, Panic and Fatal and attaches
// terminal behaviour to them, so domain levels are shifted past them.
const zapLevelOffset = 10

func toZapLevel(level core.LogLevel) zapcore.Level {
	return zapcore.Level(int8(level) + zapLevelOffset)
}

func fromZapLevel(level zapcore.Level) core.LogLevel {
	return core.LogLevel(int8(level) - zapLevelOffset)
}

// SinkConfig describes one destination for log records
type SinkConfig struct {
	// Path is "stdout", "stderr" or a file path template such as
	// "log_folder/{time:YYYY-MM-DD}.log"
	Path string
	// Level is the minimum level accepted by the sink
	Level core.LogLevel
	// Colorize enables ANSI colors in the rendered lines
	Colorize bool
	// TimeLayout overrides DefaultTimeLayout for record timestamps
	TimeLayout string
}

type sink struct {
	core   zapcore.Core
	syncer zapcore.WriteSyncer
	closer io.Closer
}

// ZapLogger implements the Logger interface using Zap.
// Every registered sink is a zapcore.Core; records fan out to all of them.
type ZapLogger struct {
	mu          sync.RWMutex
	logger      *zap.Logger
	level       core.LogLevel
	clock       core.TimeProvider
	errorOutput zapcore.WriteSyncer
	sinks       map[int]*sink
	nextID      int
}

// Option configures a ZapLogger
type Option func(*ZapLogger)

// WithTimeProvider sets the clock used for record timestamps and file names
func WithTimeProvider(tp core.TimeProvider) Option {
	return func(l *ZapLogger) {
		l.clock = tp
	}
}

// WithErrorOutput sets where sink write failures are reported
func WithErrorOutput(w zapcore.WriteSyncer) Option {
	return func(l *ZapLogger) {
		l.errorOutput = w
	}
}

// NewZapLogger creates a logger with no sinks. Records are dropped until
// AddSink is called.
func NewZapLogger(opts ...Option) *ZapLogger {
	l := &ZapLogger{
		level:       core.LogLevelTrace,
		clock:       timeProvider.NewRealTimeProvider(),
		errorOutput: zapcore.Lock(os.Stderr),
		sinks:       make(map[int]*sink),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.rebuildLocked()
	return l
}

// NewDefaultLogger creates a logger writing colored lines to stderr
func NewDefaultLogger() *ZapLogger {
	l := NewZapLogger()
	// stderr sinks cannot fail to open
	_, _ = l.AddSink(SinkConfig{Path: SinkStderr, Level: core.LogLevelDebug, Colorize: true})
	return l
}

// AddSink registers a destination and returns its id
func (l *ZapLogger) AddSink(cfg SinkConfig) (int, error) {
	var s sink
	switch cfg.Path {
	case SinkStdout:
		s.syncer = zapcore.Lock(os.Stdout)
	case SinkStderr:
		s.syncer = zapcore.Lock(os.Stderr)
	default:
		tmpl, err := ParsePathTemplate(cfg.Path)
		if err != nil {
			return 0, err
		}
		writer := NewDailyFileWriter(tmpl, l.clock)
		s.syncer = writer
		s.closer = writer
	}

	encoder := NewLineEncoder(LineEncoderConfig{
		TimeLayout: cfg.TimeLayout,
		Colorize:   cfg.Colorize,
	})
	s.core = zapcore.NewCore(encoder, s.syncer, toZapLevel(cfg.Level))

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addLocked(&s), nil
}

// AddCore registers an already built zap core as a sink and returns its id.
// Its level enabler sees shifted levels; use ZapLevel to build one.
func (l *ZapLogger) AddCore(c zapcore.Core) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.addLocked(&sink{core: c})
}

func (l *ZapLogger) addLocked(s *sink) int {
	id := l.nextID
	l.nextID++
	l.sinks[id] = s
	l.rebuildLocked()
	return id
}

// RemoveSink flushes, closes and unregisters the sink with the given id
func (l *ZapLogger) RemoveSink(id int) error {
	l.mu.Lock()
	s, ok := l.sinks[id]
	if !ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %d", errs.ErrSinkNotFound, id)
	}
	delete(l.sinks, id)
	l.rebuildLocked()
	l.mu.Unlock()

	return s.release()
}

// SinkIDs returns the ids of the registered sinks in registration order
func (l *ZapLogger) SinkIDs() []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sinkIDsLocked()
}

func (l *ZapLogger) sinkIDsLocked() []int {
	ids := make([]int, 0, len(l.sinks))
	for id := range l.sinks {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (l *ZapLogger) rebuildLocked() {
	cores := make([]zapcore.Core, 0, len(l.sinks))
	for _, id := range l.sinkIDsLocked() {
		cores = append(cores, l.sinks[id].core)
	}

	l.logger = zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		// write and the public method that called it
		zap.AddCallerSkip(2),
		// zap's default stack threshold sits below every shifted level;
		// caught errors carry their own traceback field instead
		zap.AddStacktrace(zap.LevelEnablerFunc(func(zapcore.Level) bool { return false })),
		zap.WithClock(zapClock{l.clock}),
		zap.ErrorOutput(l.errorOutput),
	)
}

// SetLevel sets the minimum log level accepted before any sink filtering
func (l *ZapLogger) SetLevel(level core.LogLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// GetLevel gets the current log level
func (l *ZapLogger) GetLevel() core.LogLevel {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// mapToZapFields converts a map of fields to zap fields, sorted by key
func mapToZapFields(fields map[string]any) []zap.Field {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zapFields := make([]zap.Field, 0, len(fields))
	for _, k := range keys {
		zapFields = append(zapFields, zap.Any(k, fields[k]))
	}
	return zapFields
}

// write must be called directly from the exported logging methods so that
// the caller skip in rebuildLocked lands on the user's frame.
func (l *ZapLogger) write(level core.LogLevel, message string, fields map[string]any) {
	l.mu.RLock()
	minLevel, logger := l.level, l.logger
	l.mu.RUnlock()

	if !minLevel.Enabled(level) {
		return
	}
	if ce := logger.Check(toZapLevel(level), message); ce != nil {
		ce.Write(mapToZapFields(fields)...)
	}
}

// Log logs a message at the given level
func (l *ZapLogger) Log(level core.LogLevel, message string, fields map[string]any) {
	l.write(level, message, fields)
}

// Trace logs trace messages
func (l *ZapLogger) Trace(message string, fields map[string]any) {
	l.write(core.LogLevelTrace, message, fields)
}

// Debug logs debug messages
func (l *ZapLogger) Debug(message string, fields map[string]any) {
	l.write(core.LogLevelDebug, message, fields)
}

// Info logs informational messages
func (l *ZapLogger) Info(message string, fields map[string]any) {
	l.write(core.LogLevelInfo, message, fields)
}

// Success logs success messages
func (l *ZapLogger) Success(message string, fields map[string]any) {
	l.write(core.LogLevelSuccess, message, fields)
}

// Warn logs warning messages
func (l *ZapLogger) Warn(message string, fields map[string]any) {
	l.write(core.LogLevelWarn, message, fields)
}

// Error logs error messages
func (l *ZapLogger) Error(message string, fields map[string]any) {
	l.write(core.LogLevelError, message, fields)
}

// Critical logs critical messages
func (l *ZapLogger) Critical(message string, fields map[string]any) {
	l.write(core.LogLevelCritical, message, fields)
}

// Exception logs err with its type and traceback at error level.
// Without an error there is nothing to report and the call is ignored.
func (l *ZapLogger) Exception(message string, err error, fields map[string]any) {
	if err == nil {
		return
	}
	l.write(core.LogLevelError, message, mergeFields(errs.ExceptionFields(err), fields))
}

func mergeFields(base, extra map[string]any) map[string]any {
	merged := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return merged
}

// Flush ensures all buffered logs are written
func (l *ZapLogger) Flush() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var err error
	for _, id := range l.sinkIDsLocked() {
		err = multierr.Append(err, l.sinks[id].sync())
	}
	return err
}

// Close flushes and releases every sink. The logger drops records afterwards.
func (l *ZapLogger) Close() error {
	l.mu.Lock()
	sinks := l.sinks
	l.sinks = make(map[int]*sink)
	l.rebuildLocked()
	l.mu.Unlock()

	var err error
	for _, s := range sinks {
		err = multierr.Append(err, s.release())
	}
	return err
}

// sync skips the process streams: fsync on a terminal or pipe fails with EINVAL
func (s *sink) sync() error {
	if s.closer == nil {
		return nil
	}
	return s.syncer.Sync()
}

func (s *sink) release() error {
	err := s.sync()
	if s.closer != nil {
		err = multierr.Append(err, s.closer.Close())
	}
	return err
}

// ZapLevel returns the zap level a core must enable to accept level
func ZapLevel(level core.LogLevel) zapcore.Level {
	return toZapLevel(level)
}

// zapClock feeds the TimeProvider into zap so record timestamps and file
// names agree
type zapClock struct {
	tp core.TimeProvider
}

func (c zapClock) Now() time.Time {
	return c.tp.Now()
}

func (c zapClock) NewTicker(d time.Duration) *time.Ticker {
	return time.NewTicker(d)
}
