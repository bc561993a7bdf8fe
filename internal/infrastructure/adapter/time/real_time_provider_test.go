package time

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealTimeProvider(t *testing.T) {
	tp := NewRealTimeProvider()

	before := time.Now()
	now := tp.Now()
	assert.False(t, now.Before(before))
	assert.GreaterOrEqual(t, tp.Since(before), time.Duration(0))
}
