package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}

func TestNew_WritesDailyFile(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	dir := t.TempDir()
	log, err := New(dir, false, zapcore.InfoLevel)
	require.NoError(t, err)

	log.Infow("config loaded", "vault", "/v")
	zap.S().Warnw("via global", "k", 1)
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(filepath.Join(dir, "logs", time.Now().Format("2006-01-02")+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"config loaded"`)
	assert.Contains(t, string(b), `"msg":"via global"`)
	assert.Contains(t, string(b), `"level":"info"`)
}

func TestBootstrap_ReplacesGlobal(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	z := Bootstrap(zapcore.ErrorLevel)
	require.NotNil(t, z)
	assert.True(t, zap.L().Core().Enabled(zapcore.ErrorLevel))
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
}
