package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerIsNopBeforeInitialize(t *testing.T) {
	require.NotNil(t, Logger)

	// Must not panic even if Initialize was never called
	Infof("message before initialize: %d", 1)
	Warnw("warning before initialize", "key", "value")
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(VerbosityInfo, false)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	Infow("initialized", "mode", "console")
	Cleanup()
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(VerbosityUser, true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	Cleanup()
}

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityTrace))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestShouldLogTrace(t *testing.T) {
	assert.False(t, ShouldLogTrace(VerbosityDebug))
	assert.True(t, ShouldLogTrace(VerbosityTrace))
	assert.True(t, ShouldLogTrace(VerbosityTrace+1))
}
