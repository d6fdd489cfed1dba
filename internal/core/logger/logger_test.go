package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// TestInit verifies logger initialization for different environments.
func TestInit(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		err := Init("development", "debug")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("Production", func(t *testing.T) {
		err := Init("production", "info")
		require.NoError(t, err)
		assert.NotNil(t, globalLogger)
		assert.False(t, globalLogger.Core().Enabled(zap.DebugLevel))
		assert.True(t, globalLogger.Core().Enabled(zap.InfoLevel))
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		err := Init("development", "invalid_level")
		require.NoError(t, err)
		// Development config falls back to debug.
		assert.True(t, globalLogger.Core().Enabled(zap.DebugLevel))
	})
}

// TestGet verifies that Get returns a usable logger before and after Init.
func TestGet(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())

	require.NoError(t, Init("development", "info"))
	assert.Same(t, globalLogger, Get())
}

// TestNamed verifies that component loggers share the global core.
func TestNamed(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Named("normalizer"))

	require.NoError(t, Init("production", "warn"))
	named := Named("analyzers")
	assert.False(t, named.Core().Enabled(zap.InfoLevel))
	assert.True(t, named.Core().Enabled(zap.WarnLevel))
}

// TestSync verifies that Sync does not panic even if logger is nil.
func TestSync(t *testing.T) {
	globalLogger = nil
	Sync()

	require.NoError(t, Init("development", "info"))
	Sync()
}
