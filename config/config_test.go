package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/martinmr/iching/config"
	"github.com/martinmr/iching/ops"
	"github.com/martinmr/iching/reading"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.Validate())

	cat, err := cfg.Catalogue()
	require.NoError(t, err)
	assert.Equal(t, ops.Canonical, cat)

	m, err := cfg.Method()
	require.NoError(t, err)
	assert.Equal(t, reading.YarrowStalks, m)

	r, err := cfg.Randomness()
	require.NoError(t, err)
	assert.Equal(t, reading.Random, r)
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(config.DefaultConfig(), cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "iching.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  catalogue: extended
  all: true
reading:
  method: coins
  randomness: pseudo
  timeout: 3s
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "extended", cfg.Search.Catalogue)
	assert.True(t, cfg.Search.All)
	assert.Equal(t, "coins", cfg.Reading.Method)
	assert.Equal(t, 3*time.Second, cfg.Reading.Timeout)
	// untouched sections keep their defaults
	assert.Equal(t, 1, cfg.Sequence.Samples)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unterminated"), 0o644))
	_, err := config.Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(config.EnvCatalogue, "extended")
	t.Setenv(config.EnvMethod, "coins")
	t.Setenv(config.EnvRandomness, "pseudo")
	t.Setenv(config.EnvWorkers, "3")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "extended", cfg.Search.Catalogue)
	assert.Equal(t, "coins", cfg.Reading.Method)
	assert.Equal(t, "pseudo", cfg.Reading.Randomness)
	assert.Equal(t, 3, cfg.Sequence.Workers)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestEnvWorkersMustBeInteger(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")
	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"catalogue":  func(c *config.Config) { c.Search.Catalogue = "baroque" },
		"method":     func(c *config.Config) { c.Reading.Method = "dice" },
		"randomness": func(c *config.Config) { c.Reading.Randomness = "quantum" },
		"level":      func(c *config.Config) { c.Logging.Level = "loud" },
		"format":     func(c *config.Config) { c.Logging.Format = "xml" },
		"samples":    func(c *config.Config) { c.Sequence.Samples = 0 },
		"workers":    func(c *config.Config) { c.Sequence.Workers = -1 },
		"timeout":    func(c *config.Config) { c.Reading.Timeout = 0 },
		"burst":      func(c *config.Config) { c.Reading.Burst = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "iching.yaml")
	want := config.DefaultConfig()
	want.Search.Catalogue = "extended"
	want.Sequence.Samples = 50
	require.NoError(t, want.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
