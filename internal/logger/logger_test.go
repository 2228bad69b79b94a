package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Mohsinsiddi/catsale/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewProductionSkipsInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	l, err := logger.New(logger.Config{OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Info("minted", zap.Uint64("quantity", 1))
	l.Warn("withdraw failed")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "minted")
	assert.Contains(t, string(data), "withdraw failed")
	assert.Contains(t, string(data), `"level":"warn"`)
}

func TestNewDebugEnablesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	l, err := logger.New(logger.Config{Debug: true, OutputPaths: []string{path}})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l.Debug("mint rejected")
	require.NoError(t, l.Sync())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mint rejected")
}

func TestMustPanicsOnBadOutput(t *testing.T) {
	assert.Panics(t, func() {
		logger.Must(logger.Config{OutputPaths: []string{"/nonexistent-dir/x/y.log"}})
	})
}
