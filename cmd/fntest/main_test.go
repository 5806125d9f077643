package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	root := newRootCmd(logger, new(slog.LevelVar), &out)
	root.SetArgs(args)
	root.SetErr(io.Discard)

	err := root.Execute()

	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "sort ")
	assert.Contains(t, out, "isqrt ")
	assert.Contains(t, out, "reverse (demo) ")
}

func TestRunPassingSuites(t *testing.T) {
	out, err := execute(t, "run", "--trials", "25", "--seed", "3", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "RandomizedFunctionTest: sort: ")
	assert.Contains(t, out, "RandomizedFunctionTest: isqrt: ")
	assert.NotContains(t, out, "reverse")
	assert.Contains(t, out, "Suites: **all passed**")
	assert.Equal(t, 0, exitCode(io.Discard, err))
}

func TestRunFailingSuite(t *testing.T) {
	out, err := execute(t, "run", "--suites", "reverse", "--trials", "50",
		"--seed", "9", "--verbosity", "verbose", "--color", "never")

	require.ErrorIs(t, err, errSuitesFailed)
	assert.Equal(t, 1, exitCode(io.Discard, err))
	assert.Contains(t, out, " ERROR CASE 0:")
	assert.Contains(t, out, "| reverse | FAIL |")
}

func TestRunSilent(t *testing.T) {
	out, err := execute(t, "run", "--suites", "sort", "--trials", "5", "--verbosity", "silent")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fntest.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"trials: 7\nseed: 11\nsuites: [isqrt]\ncolor: never\n"), 0o600))

	out, err := execute(t, "run", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, " OK (7/7) (")

	out, err = execute(t, "run", "--config", path, "--trials", "3")
	require.NoError(t, err)
	assert.Contains(t, out, " OK (3/3) (")
}

func TestRunCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown suite", args: []string{"run", "--suites", "bogus"}},
		{name: "bad verbosity", args: []string{"run", "--verbosity", "loud"}},
		{name: "bad color", args: []string{"run", "--color", "pink"}},
		{name: "negative trials", args: []string{"run", "--trials", "-1"}},
		{name: "missing config", args: []string{"run", "--config", "nope.toml"}},
		{name: "bad log level", args: []string{"list", "--log-level", "chatty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(io.Discard, err))
		})
	}
}
