package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirhossein-jamali/logging-demo/internal/domain/port/core"
)

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()

	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.SetLevel(core.LogLevelCritical)
	assert.Equal(t, core.LogLevelCritical, l.GetLevel())

	assert.NotPanics(t, func() {
		l.Log(core.LogLevelInfo, "m", nil)
		l.Trace("m", nil)
		l.Debug("m", nil)
		l.Info("m", nil)
		l.Success("m", nil)
		l.Warn("m", nil)
		l.Error("m", nil)
		l.Critical("m", nil)
		l.Exception("m", errors.New("boom"), nil)
	})
	assert.NoError(t, l.Flush())
}
