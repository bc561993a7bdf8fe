package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/logging-demo/internal/domain/error"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected LogLevel
	}{
		{"trace", LogLevelTrace},
		{"DEBUG", LogLevelDebug},
		{" Info ", LogLevelInfo},
		{"success", LogLevelSuccess},
		{"warning", LogLevelWarn},
		{"warn", LogLevelWarn},
		{"error", LogLevelError},
		{"critical", LogLevelCritical},
		{"fatal", LogLevelCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLogLevel(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := ParseLogLevel("verbose")
		assert.ErrorIs(t, err, errs.ErrInvalidLogLevel)
	})
}

func TestLogLevel_String(t *testing.T) {
	expected := []string{"TRACE", "DEBUG", "INFO", "SUCCESS", "WARNING", "ERROR", "CRITICAL"}
	for i, level := range AllLevels() {
		assert.Equal(t, expected[i], level.String())

		parsed, err := ParseLogLevel(level.String())
		require.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
	assert.Equal(t, "LEVEL(7)", LogLevel(7).String())
}

func TestLogLevel_Ordering(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}

	assert.True(t, LogLevelInfo.Enabled(LogLevelWarn))
	assert.True(t, LogLevelInfo.Enabled(LogLevelInfo))
	assert.False(t, LogLevelInfo.Enabled(LogLevelDebug))
}
