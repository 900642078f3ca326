package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/devshellgo/internal/testutil"
)

const validLock = `
packages:
  llvm: /nix/store/bbb-llvm
`

// TestErrorHandling_UndeclaredReferenceIsRejected tests the referential
// consistency rule: an environment variable interpolating a package that is
// not declared as a dependency is a load-time error, independent of any
// resolver mapping.
func TestErrorHandling_UndeclaredReferenceIsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			shell "broken" {
			  dependencies = [pkg.llvm]

			  environment {
			    LIBCLANG_PATH = "${pkg.libclang}/lib/libclang.so"
			  }
			}
		`,
		"devshell.lock": validLock,
	}

	// --- Act ---
	result := testutil.RunCLITest(t, files, nil,
		[]string{"-packages", "@root/devshell.lock", "@root/main.hcl"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "Undeclared package reference")
	assert.Empty(t, result.Output)
}

// TestErrorHandling_InvalidHCLIsRejected tests that a syntactically broken
// descriptor fails the run with a parse error pointing at the file.
func TestErrorHandling_InvalidHCLIsRejected(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl":      `shell "broken" {`,
		"devshell.lock": validLock,
	}

	// --- Act ---
	result := testutil.RunCLITest(t, files, nil,
		[]string{"-packages", "@root/devshell.lock", "@root/main.hcl"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "main.hcl")
	assert.Empty(t, result.Output)
}

// TestErrorHandling_MissingStoreDirectory tests that a nonexistent store
// path fails before resolution starts.
func TestErrorHandling_MissingStoreDirectory(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"main.hcl": `
			shell "minimal" {
			  dependencies = [pkg.llvm]
			}
		`,
	}

	// --- Act ---
	result := testutil.RunCLITest(t, files, nil,
		[]string{"-store", "@root/no-such-store", "@root/main.hcl"})

	// --- Assert ---
	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "failed to read store directory")
	assert.Empty(t, result.Output)
}
