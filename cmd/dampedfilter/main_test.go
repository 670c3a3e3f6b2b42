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

	"dampedfilter"
	"dampedfilter/internal/params"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	a, cmd, err := newApp(args, &stdout, &stderr)
	if err != nil {
		return stdout.String(), stderr.String(), err
	}
	err = a.run(context.Background(), cmd)
	return stdout.String(), stderr.String(), err
}

func TestCalc(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "parameters.txt")
	out := filepath.Join(dir, "out")

	content := strings.Replace(string(params.Default()), "capacitor_overvoltage = 1.3", "capacitor_overvoltage = 1.0", 1)
	require.NoError(t, os.WriteFile(in, []byte(content+"extra = 5\n"), 0o644))

	stdout, stderr, err := runCLI(t, "-out", out, "-formats", "txt,json", "calc", in)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "==== Impedance (ohm) ====\n"))
	assert.Contains(t, stdout, "Total Number of Cells: 12\n")
	assert.Contains(t, stderr, "unknown parameter ignored")
	assert.Contains(t, stderr, "key=extra")
	assert.Contains(t, stderr, "key=capacitor_overvoltage")

	assert.FileExists(t, filepath.Join(out, "results.txt"))
	assert.FileExists(t, filepath.Join(out, "results.json"))
	assert.NoFileExists(t, filepath.Join(out, "results.xlsx"))

	saved, err := os.ReadFile(filepath.Join(out, "results.txt"))
	require.NoError(t, err)
	assert.Equal(t, stdout, string(saved))
}

func TestCalcCreatesMissingFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "parameters.txt")

	stdout, _, err := runCLI(t, "calc", in)
	require.NoError(t, err)
	assert.Contains(t, stdout, "a default file was created")

	written, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, params.Default(), written)
}

func TestCalcDomainError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "parameters.txt")
	content := strings.Replace(string(params.Default()), "series_cap_count = 2", "series_cap_count = 0", 1)
	require.NoError(t, os.WriteFile(in, []byte(content), 0o644))

	stdout, _, err := runCLI(t, "-out", filepath.Join(dir, "out"), "calc", in)
	assert.ErrorIs(t, err, dampedfilter.ErrDomain)
	assert.Empty(t, stdout)
	assert.NoDirExists(t, filepath.Join(dir, "out"))
}

func TestDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "params.txt")

	stdout, _, err := runCLI(t, "defaults", path)
	require.NoError(t, err)
	assert.Equal(t, "Default parameters written to "+path+"\n", stdout)
	assert.FileExists(t, path)
}

func TestBadInvocation(t *testing.T) {
	tests := map[string][]string{
		"no command":      {},
		"unknown command": {"plot"},
		"bad format":      {"-formats", "csv", "calc"},
		"bad level":       {"-log-level", "loud", "calc"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := runCLI(t, args...)
			assert.Error(t, err)
		})
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	a, cmd, err := newApp([]string{"-addr", "127.0.0.1:0", "serve"}, &stdout, &stderr)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, a.run(ctx, cmd))
}
