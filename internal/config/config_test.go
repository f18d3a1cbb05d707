package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/lvtour/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 60*time.Second, cfg.Solve.TimeLimit)
	assert.Equal(t, 1000, cfg.Solve.MaxNoImprove)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
solve:
  time_limit: 1m30s
  seed: 7
log:
  format: json
metrics:
  file: out.prom
progress: true
`))
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Solve.TimeLimit)
	assert.Equal(t, int64(7), cfg.Solve.Seed)
	assert.Equal(t, 1000, cfg.Solve.MaxNoImprove, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "out.prom", cfg.Metrics.File)
	assert.True(t, cfg.Progress)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "solve:\n  budget: 3s\n", "budget"},
		{"bad duration", "solve:\n  time_limit: soon\n", "time.Duration"},
		{"zero stagnation", "solve:\n  max_no_improve: 0\n", "solve.max_no_improve"},
		{"negative time", "solve:\n  time_limit: -1s\n", "solve.time_limit"},
		{"negative eps", "solve:\n  eps: -0.5\n", "solve.eps"},
		{"log level", "log:\n  level: loud\n", "log.level"},
		{"log format", "log:\n  format: xml\n", "log.format"},
		{"empty output dir", "output:\n  dir: \"\"\n", "output.dir"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvtour.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solve:\n  max_no_improve: 25\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Solve.MaxNoImprove)

	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	want := config.Default()
	want.Solve.Seed = 99
	want.Metrics.File = "m.prom"

	data, err := want.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "time_limit: 1m0s")

	got, err := config.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
