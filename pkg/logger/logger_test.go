package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "service.log")

	log, err := New(file, "debug")
	require.NoError(t, err)

	log.Info("slots fetched: count=%d", 3)
	log.With("component", "prefetch").Warn("cache miss for %s", "2024-06-10_2024-06-14")
	_ = log.Close()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"slots fetched: count=3"`)
	assert.Contains(t, string(data), `"component":"prefetch"`)
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Error("ignored %v", 1)
	assert.NoError(t, log.Close())
}
