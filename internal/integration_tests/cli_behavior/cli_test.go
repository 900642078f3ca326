package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/devshellgo/internal/cli"
	"github.com/vk/devshellgo/internal/testutil"
)

const minimalShell = `
shell "minimal" {
  dependencies = [pkg.zlib]
}
`

const minimalLock = `
packages:
  zlib: /nix/store/aaa-zlib
`

// TestCliBehavior_InvalidFlagsAreRejected tests that bad flag values fail
// with exit code 2 before any resolution work happens.
func TestCliBehavior_InvalidFlagsAreRejected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "invalid log level",
			args:    []string{"-packages", "@root/devshell.lock", "-log-level", "loud", "@root/main.hcl"},
			message: "invalid log-level",
		},
		{
			name:    "invalid log format",
			args:    []string{"-packages", "@root/devshell.lock", "-log-format", "xml", "@root/main.hcl"},
			message: "invalid log-format",
		},
		{
			name:    "invalid output format",
			args:    []string{"-packages", "@root/devshell.lock", "-format", "xml", "@root/main.hcl"},
			message: "Format must be one of",
		},
		{
			name:    "no resolver source",
			args:    []string{"@root/main.hcl"},
			message: "either a packages lockfile or a store directory",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			files := map[string]string{
				"main.hcl":      minimalShell,
				"devshell.lock": minimalLock,
			}

			// --- Act ---
			result := testutil.RunCLITest(t, files, nil, tc.args)

			// --- Assert ---
			require.Error(t, result.Err)
			exitErr, ok := result.Err.(*cli.ExitError)
			require.True(t, ok, "expected an ExitError, got %T", result.Err)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.message)
			assert.Empty(t, result.Output)
		})
	}
}

// TestCliBehavior_ListShells tests that -list prints the declared shell
// names, one per line, sorted.
func TestCliBehavior_ListShells(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"shells/a.hcl": `
			shell "zeta" {
			  dependencies = [pkg.zlib]
			}
		`,
		"shells/b.hcl": `
			shell "alpha" {
			  dependencies = [pkg.llvm]
			}
		`,
	}

	// --- Act ---
	result := testutil.RunCLITest(t, files, nil, []string{"-list", "@root/shells"})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "alpha\nzeta\n", result.Output)
}

// TestCliBehavior_ShellSelection tests that -shell picks the named shell and
// that an unknown name fails with the available names in the message.
func TestCliBehavior_ShellSelection(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			shell "first" {
			  dependencies = [pkg.zlib]
			}
			shell "second" {
			  dependencies = [pkg.zlib]
			  environment {
			    MARKER = "second"
			  }
			}
		`,
		"devshell.lock": minimalLock,
	}

	// --- Act ---
	result := testutil.RunCLITest(t, files, nil,
		[]string{"-s", "second", "-packages", "@root/devshell.lock", "@root/main.hcl"})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, `export MARKER="second"`)

	// --- Act again, with an unknown shell name ---
	result = testutil.RunCLITest(t, files, nil,
		[]string{"-shell", "third", "-packages", "@root/devshell.lock", "@root/main.hcl"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), `shell "third" not found`)
	assert.Contains(t, result.Err.Error(), "first")
	assert.Contains(t, result.Err.Error(), "second")
}
