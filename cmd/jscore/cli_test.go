package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs fn with os.Stdout swapped for a pipe and returns
// whatever it wrote, the way an integration-style CLI test has to observe
// output a subcommand writes straight to os.Stdout rather than returning.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	require.NoError(t, w.Close())
	os.Stdout = orig

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestParseReportsACleanFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.js")
	require.NoError(t, os.WriteFile(path, []byte("var x = 1;\n"), 0o644))

	out := captureStdout(t, func() {
		cmdParse.Run(cmdParse, []string{path})
	})

	assert.Contains(t, out, "parsed 1 statement(s) cleanly")
}

func TestLintFlagsADebuggerStatement(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.js")
	require.NoError(t, os.WriteFile(path, []byte("debugger;\n"), 0o644))

	argsLint.cachePath = ""
	argsLint.jobs = 0
	argsLint.stats = false

	var runErr error
	out := captureStdout(t, func() {
		runErr = cmdLint.RunE(cmdLint, []string{path})
	})

	require.Error(t, runErr)
	assert.Contains(t, out, "no-debugger")
}

func TestLintHonorsConfigSeverityOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.js")
	require.NoError(t, os.WriteFile(path, []byte("debugger;\n"), 0o644))

	cfgPath := filepath.Join(t.TempDir(), "jscore.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{"rules": {"no-debugger": "warning"}}`), 0o644))
	argsRoot.configPath = cfgPath
	defer func() { argsRoot.configPath = "" }()

	argsLint.cachePath = ""
	argsLint.jobs = 0

	var runErr error
	out := captureStdout(t, func() {
		runErr = cmdLint.RunE(cmdLint, []string{path})
	})

	require.NoError(t, runErr)
	assert.Contains(t, out, "warning no-debugger")
}

func TestMinifyWriteOverwritesTheInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.js")
	require.NoError(t, os.WriteFile(path, []byte("if (true) { foo(); }\n"), 0o644))

	argsMinify.write = true
	defer func() { argsMinify.write = false }()

	require.NoError(t, cmdMinify.RunE(cmdMinify, []string{path}))

	out, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, string(out))
}
