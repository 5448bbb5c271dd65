package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFilterCore(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := &levelFilterCore{Core: inner, minLevel: zapcore.WarnLevel}

	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	logger := zap.New(core)
	logger.Info("dropped")
	logger.Warn("kept")
	logger.With(zap.String("teller_id", "t-1")).Debug("dropped too")

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "kept", entries[0].Message)
	}
}

func TestLevelFilterCore_With(t *testing.T) {
	inner, logs := observer.New(zapcore.DebugLevel)
	core := (&levelFilterCore{Core: inner, minLevel: zapcore.InfoLevel}).With([]zapcore.Field{zap.String("k", "v")})

	_, ok := core.(*levelFilterCore)
	assert.True(t, ok)

	zap.New(core).Info("hello")
	if assert.Equal(t, 1, logs.Len()) {
		assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
	}
}
