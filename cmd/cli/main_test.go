package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, logOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, logOut.String(), "Usage:", "Expected help text to be printed")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, logOut, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_ResolvesDescriptor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "main.hcl"), []byte(`
		shell "clang-env" {
		  dependencies = [pkg.libclang]

		  environment {
		    LIBCLANG_PATH = "${pkg.libclang}/lib/libclang.so"
		  }
		}
	`), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "devshell.lock"), []byte(
		"packages:\n  libclang: /nix/store/ccc-libclang\n"), 0600))

	args := []string{"-packages", filepath.Join(tempDir, "devshell.lock"), filepath.Join(tempDir, "main.hcl")}
	out := &bytes.Buffer{}
	logOut := &bytes.Buffer{}

	// --- Act ---
	err := run(out, logOut, args)

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), `export LIBCLANG_PATH="/nix/store/ccc-libclang/lib/libclang.so"`)
}
