package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hopreach/config"
	"github.com/katalvlaran/hopreach/edgelist"
)

const fixture = "A B\nA C\nB D\nC E\nD E\n"

func writeEdges(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edges.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs one CLI invocation and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestProfileCommand(t *testing.T) {
	out, err := execute(t, "profile", "--seed", "1", writeEdges(t, fixture))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "For depth 1, the most popular node is A, covering 60.00% of all users", lines[0])
	assert.Equal(t, "For depth 6, the most popular node is A, covering 100.00% of all users", lines[5])
}

func TestProfileCommand_FlagsAndVerbose(t *testing.T) {
	path := writeEdges(t, "A,B\nA,C\nbroken\n")
	out, err := execute(t, "profile", "--delimiter", ",", "--max-depth", "2", "--workers", "2", "-v", "--seed", "3", path)
	require.NoError(t, err)
	assert.Contains(t, out, "For depth 1, the most popular node is A, covering 100.00% of all users\n  mean ")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestOverlapCommand(t *testing.T) {
	out, err := execute(t, "overlap", "--seed", "1", writeEdges(t, fixture))
	require.NoError(t, err)
	assert.Equal(t, "Average overlap: 0.40\n", out)
}

func TestBatchesCommand(t *testing.T) {
	out, err := execute(t, "batches", "--batch-size", "2", "--seed", "5", "--reset=false", writeEdges(t, fixture))
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "Batch "))
	assert.Contains(t, out, "5 vertices, 5 edges")
	assert.Contains(t, out, "non-isolated (5): A B C D E")
}

func TestGenerateCommand(t *testing.T) {
	out, err := execute(t, "generate", "path", "--n", "3")
	require.NoError(t, err)
	assert.Equal(t, "0 1\n1 2\n", out)

	out, err = execute(t, "generate", "random", "--n", "30", "--p", "0.2", "--seed", "9", "--prefix", "u")
	require.NoError(t, err)
	again, err := execute(t, "generate", "random", "--n", "30", "--p", "0.2", "--seed", "9", "--prefix", "u")
	require.NoError(t, err)
	assert.Equal(t, out, again)
	assert.True(t, strings.HasPrefix(out, "u0 "))

	_, err = execute(t, "generate", "hexagon")
	assert.Error(t, err)
}

func TestMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	for _, sub := range []string{"profile", "overlap", "batches"} {
		_, err := execute(t, sub, missing)
		assert.ErrorIs(t, err, edgelist.ErrLoad, sub)
		assert.ErrorIs(t, err, os.ErrNotExist, sub)
	}
}

func TestMetricsFile_WrittenOnFailure(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "failed.prom")
	_, err := execute(t, "batches", "--metrics-file", metricsPath, filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hopreach_records_skipped_total 0")
}

func TestMetricsFile(t *testing.T) {
	dir := t.TempDir()
	metricsPath := filepath.Join(dir, "hopreach.prom")
	_, err := execute(t, "profile", "--seed", "1", "--metrics-file", metricsPath, writeEdges(t, fixture))
	require.NoError(t, err)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `hopreach_traversals_total{analysis="profile"} 5`)
	assert.Contains(t, string(data), "hopreach_graph_vertices 5")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analysis:\n  max_depth: 2\n  seed: 4\n"), 0o600))

	out, err := execute(t, "--config", cfgPath, "profile", writeEdges(t, fixture))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "\n"))

	_, err = execute(t, "--config", filepath.Join(dir, "missing.yaml"), "profile", writeEdges(t, fixture))
	assert.Error(t, err)
}

func TestNewLogger_Formats(t *testing.T) {
	var buf bytes.Buffer
	newLogger(&buf, config.LogConfig{Level: "info", Format: "json"}).Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	// a buffer is not a terminal, so auto selects json
	buf.Reset()
	newLogger(&buf, config.LogConfig{Level: "info", Format: "auto"}).Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))

	buf.Reset()
	newLogger(&buf, config.LogConfig{Level: "warn", Format: "text"}).Info("hidden")
	assert.Empty(t, buf.String())
}
