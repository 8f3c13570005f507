package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopreach/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hopreach.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 100, cfg.Analysis.SampleSize)
	assert.Equal(t, 6, cfg.Analysis.MaxDepth)
	assert.True(t, cfg.Graph.SelfLoops)
	assert.True(t, cfg.Batch.ResetPerBatch)
}

func TestLoad_ImplicitDefaultPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultPath), []byte("analysis:\n  workers: 3\n"), 0o600))
	t.Chdir(dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Analysis.Workers)
}

func TestLoad_ExplicitMissing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, `
input:
  delimiter: ","
  comment_prefix: "#"
analysis:
  sample_size: 10
  max_depth: 3
  seed: 99
batch:
  size: 50
  reset_per_batch: false
log:
  level: debug
  format: json
`)
	t.Setenv("HOPREACH_ANALYSIS_SAMPLE_SIZE", "25")
	t.Setenv("HOPREACH_BATCH_TOP", "5")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ",", cfg.Input.Delimiter)
	assert.Equal(t, "#", cfg.Input.CommentPrefix)
	assert.Equal(t, 25, cfg.Analysis.SampleSize, "env beats file")
	assert.Equal(t, 3, cfg.Analysis.MaxDepth, "file beats default")
	assert.Equal(t, 1, cfg.Analysis.Workers, "default survives")
	require.NotNil(t, cfg.Analysis.Seed)
	assert.Equal(t, int64(99), *cfg.Analysis.Seed)
	assert.Equal(t, 50, cfg.Batch.Size)
	assert.False(t, cfg.Batch.ResetPerBatch)
	assert.Equal(t, 5, cfg.Batch.Top)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoad_EnvSeedAndBadValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOPREACH_ANALYSIS_SEED", "7")
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg.Analysis.Seed)
	assert.Equal(t, int64(7), *cfg.Analysis.Seed)

	t.Setenv("HOPREACH_ANALYSIS_WORKERS", "many")
	_, err = config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeFile(t, "analysis: [unclosed\n"))
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*config.Config){
		"depth zero":        func(c *config.Config) { c.Analysis.MaxDepth = 0 },
		"negative sample":   func(c *config.Config) { c.Analysis.SampleSize = -1 },
		"no workers":        func(c *config.Config) { c.Analysis.Workers = 0 },
		"batch size":        func(c *config.Config) { c.Batch.Size = 0 },
		"log level":         func(c *config.Config) { c.Log.Level = "loud" },
		"log format":        func(c *config.Config) { c.Log.Format = "xml" },
		"long delimiter":    func(c *config.Config) { c.Input.Delimiter = ",;" },
		"newline delimiter": func(c *config.Config) { c.Input.Delimiter = "\n" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}

	ok := config.Default()
	ok.Input.Delimiter = "\t"
	assert.NoError(t, ok.Validate())
}
