package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	assert.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	assert.NoError(t, SetLevel("WARN"))
	assert.Equal(t, zapcore.WarnLevel, level.Level())
}

func TestSetLevel_InvalidKeepsCurrent(t *testing.T) {
	t.Cleanup(func() { level.SetLevel(zapcore.InfoLevel) })

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}
