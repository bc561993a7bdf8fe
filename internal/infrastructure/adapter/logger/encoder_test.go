package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

func testEntry(level core.LogLevel, message string) zapcore.Entry {
	return zapcore.Entry{
		Level:   toZapLevel(level),
		Time:    time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		Message: message,
		Caller: zapcore.EntryCaller{
			Defined:  true,
			Function: "github.com/example/app/internal/demo.(*Runner).Run",
			Line:     42,
		},
	}
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	defer buf.Free()
	return buf.String()
}

func TestLineEncoder(t *testing.T) {
	t.Run("should render the plain record layout", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{})

		line := encode(t, enc, testEntry(core.LogLevelInfo, "This is a info log"))

		assert.Equal(t, "2024-01-02 15:04:05 | INFO     | demo:(*Runner).Run:42 - This is a info log\n", line)
	})

	t.Run("should pad every level label to eight characters", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{})

		for _, level := range core.AllLevels() {
			line := encode(t, enc, testEntry(level, "m"))
			parts := strings.Split(line, " | ")
			require.Len(t, parts, 3)
			assert.Len(t, parts[1], 8)
			assert.Equal(t, level.String(), strings.TrimSpace(parts[1]))
		}
	})

	t.Run("should append fields as json and traceback on following lines", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{})

		line := encode(t, enc, testEntry(core.LogLevelCritical, "caught"),
			zap.String("error_type", "ZeroDivisionError"),
			zap.String(core.FieldTraceback, "frame one\n\tfile.go:1\n"),
		)

		assert.Equal(t,
			"2024-01-02 15:04:05 | CRITICAL | demo:(*Runner).Run:42 - caught {\"error_type\":\"ZeroDivisionError\"}\n"+
				"frame one\n\tfile.go:1\n",
			line)
	})

	t.Run("should include context added through With", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{})
		enc.AddString("run", "abc")
		clone := enc.Clone()
		clone.AddInt("attempt", 2)

		line := encode(t, clone, testEntry(core.LogLevelWarn, "retry"))

		assert.Contains(t, line, ` - retry {"run":"abc","attempt":2}`)
		assert.NotContains(t, encode(t, enc, testEntry(core.LogLevelWarn, "retry")), "attempt")
	})

	t.Run("should honour a custom time layout", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{TimeLayout: time.RFC3339})

		line := encode(t, enc, testEntry(core.LogLevelInfo, "m"))

		assert.True(t, strings.HasPrefix(line, "2024-01-02T15:04:05Z | "))
	})

	t.Run("should fall back to the logger name without caller", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{})
		ent := testEntry(core.LogLevelInfo, "m")
		ent.Caller = zapcore.EntryCaller{}

		assert.Contains(t, encode(t, enc, ent), "| ? - m")
	})

	t.Run("should emit ANSI colors when enabled", func(t *testing.T) {
		enc := NewLineEncoder(LineEncoderConfig{Colorize: true})

		line := encode(t, enc, testEntry(core.LogLevelError, "colored"))

		assert.Contains(t, line, "\x1b[")
		assert.Contains(t, line, "colored")
	})
}

func TestSplitFunction(t *testing.T) {
	testCases := []struct {
		full string
		pkg  string
		fn   string
	}{
		{"main.main", "main", "main"},
		{"github.com/example/app/internal/demo.Divide", "demo", "Divide"},
		{"github.com/example/app/internal/demo.Catch[...].func1", "demo", "Catch[...].func1"},
		{"github.com/example/app/internal/demo.(*Runner).Run", "demo", "(*Runner).Run"},
		{"", "?", "?"},
	}

	for _, tc := range testCases {
		t.Run(tc.full, func(t *testing.T) {
			pkg, fn := splitFunction(tc.full)
			assert.Equal(t, tc.pkg, pkg)
			assert.Equal(t, tc.fn, fn)
		})
	}
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
