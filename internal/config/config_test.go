package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env here
	t.Setenv(envLogLevel, "")
	t.Setenv(envWorkers, "")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 1, cfg.Workers)
}

func TestLoadEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("WEIQI_WORKERS=4\nLOG_LEVEL=debug\n"), 0o600))

	// Variables already set win over the file
	t.Setenv(envLogLevel, "warn")
	t.Setenv(envWorkers, "")
	os.Unsetenv(envWorkers)

	cfg, err := Load(envFile)
	require.NoError(t, err)
	require.Equal(t, 4, cfg.Workers)
	require.Equal(t, "warn", cfg.LogLevel)

	_, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}

func TestLoadBadWorkers(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, v := range []string{"zero", "0", "-3"} {
		t.Setenv(envWorkers, v)
		_, err := Load("")
		require.Error(t, err, v)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("DEBUG")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = NewLogger("warn")
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.InfoLevel))

	_, err = NewLogger("loud")
	require.Error(t, err)
}
