package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

var _ zapcore.WriteSyncer = (*DailyFileWriter)(nil)

// DailyFileWriter appends to the file named by rendering a path template
// with the current time. When the rendered name changes (a new calendar
// day for "{time:YYYY-MM-DD}") the current file is closed and the new one
// is opened. The file and its directory are created on first write.
type DailyFileWriter struct {
	mu       sync.Mutex
	template *PathTemplate
	clock    core.TimeProvider
	file     *os.File
	path     string
}

// NewDailyFileWriter creates a writer for the given template
func NewDailyFileWriter(template *PathTemplate, clock core.TimeProvider) *DailyFileWriter {
	return &DailyFileWriter{
		template: template,
		clock:    clock,
	}
}

// Write appends p to the file for the current time
func (w *DailyFileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	path := w.template.Render(w.clock.Now())
	var closeErr error
	if w.file == nil || path != w.path {
		var err error
		if closeErr, err = w.openLocked(path); err != nil {
			return 0, err
		}
	}
	n, err := w.file.Write(p)
	return n, multierr.Append(closeErr, err)
}

// openLocked switches to path. A failure to close the previous file does
// not prevent the switch and is returned as closeErr.
func (w *DailyFileWriter) openLocked(path string) (closeErr, err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	if w.file != nil {
		if err := w.file.Close(); err != nil {
			closeErr = fmt.Errorf("close log file %s: %w", w.path, err)
		}
	}
	w.file = file
	w.path = path
	return closeErr, nil
}

// Path returns the file currently written to, or "" before the first write
func (w *DailyFileWriter) Path() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.path
}

// Sync flushes the current file to disk
func (w *DailyFileWriter) Sync() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	return w.file.Sync()
}

// Close closes the current file. A later Write reopens it.
func (w *DailyFileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	w.path = ""
	return err
}
