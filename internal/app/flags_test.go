package app

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) (*Config, *flag.FlagSet) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg, fs
}

func TestDefaultsValidate(t *testing.T) {
	cfg, _ := parse(t)
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 12, cfg.Width)
	assert.Equal(t, 48, cfg.Cell)

	l := cfg.Layout()
	w, h := l.ScreenSize(cfg.Width, cfg.Height)
	assert.Equal(t, 809, w)
	assert.Equal(t, 589, h)
}

func TestLoadYAMLWithFlagPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "encounter.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
width: 20
height: 10
seed: 7
obstacles: true
mc_trials: 250
log_level: debug
`), 0o600))

	cfg, fs := parse(t, "-config", path, "-w", "16")
	require.NoError(t, cfg.Load(fs))

	assert.Equal(t, 16, cfg.Width, "explicit flag wins over the file")
	assert.Equal(t, 10, cfg.Height)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.True(t, cfg.Obstacles)
	assert.Equal(t, 250, cfg.MonteCarloTrials)
	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, 48, cfg.Cell, "fields missing from the file keep defaults")

	world := cfg.WorldConfig()
	assert.Equal(t, 16, world.Width)
	assert.Equal(t, 250, world.Params.MonteCarloTrials)
}

func TestLoadErrors(t *testing.T) {
	cfg, fs := parse(t, "-config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, cfg.Load(fs), os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [1, 2"), 0o600))
	cfg, fs = parse(t, "-config", path)
	assert.Error(t, cfg.Load(fs))

	cfg, fs = parse(t)
	assert.NoError(t, cfg.Load(fs), "no config file is fine")
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg, _ := parse(t, "-w", "1", "-h", "1", "-cell", "0", "-density", "2", "-log-level", "loud")
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "at least two cells")
	assert.Contains(t, msg, "cell size")
	assert.Contains(t, msg, "obstacle density")
	assert.Contains(t, msg, "log level")
}

func TestNewLogger(t *testing.T) {
	cfg, _ := parse(t, "-log-level", "warn")
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown", "turns", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "turns=3")
}
