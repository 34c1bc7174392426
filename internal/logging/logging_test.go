package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_FollowsAtomicLevel(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)

	log, err := New(level)
	require.NoError(t, err)

	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.WarnLevel))

	level.SetLevel(zap.DebugLevel)

	assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestNop(t *testing.T) {
	log := Nop()

	assert.False(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
	log.Debugw("ignored", "key", "value")
}
