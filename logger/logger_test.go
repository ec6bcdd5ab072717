package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	lggr, err := New()
	require.NoError(t, err)
	require.NotNil(t, lggr)
	assert.Empty(t, lggr.Name())
}

func TestConfigNew(t *testing.T) {
	t.Parallel()

	lggr, err := (&Config{Level: zapcore.ErrorLevel}).New()
	require.NoError(t, err)
	require.NotNil(t, lggr)
}

func TestNewWith(t *testing.T) {
	t.Parallel()

	var initial zapcore.Level
	lggr, err := NewWith(func(cfg *zap.Config) {
		initial = cfg.Level.Level()
		cfg.Level.SetLevel(zapcore.WarnLevel)
	})
	require.NoError(t, err)
	require.NotNil(t, lggr)
	assert.Equal(t, zapcore.InfoLevel, initial)
}

func TestTest(t *testing.T) {
	t.Parallel()

	lggr := Test(t)
	require.NotNil(t, lggr)
	lggr.Debugw("debug visible", "k", "v")
	lggr.Infof("info visible: %d", 42)
}

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, observed := TestObserved(t, zapcore.WarnLevel)
	lggr.Debugw("below the observed level")
	lggr.Warnw("watch out", "k", "v")

	require.Equal(t, 1, observed.Len())
	entry := observed.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "watch out", entry.Message)
	assert.Equal(t, "v", entry.ContextMap()["k"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	lggr := Nop()
	lggr.Errorw("discarded", "k", "v")
	assert.NoError(t, lggr.Sync())
}
