package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/devshellgo/internal/app"
	"github.com/vk/devshellgo/internal/cli"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	Exited    bool
}

// RootToken is replaced in CLI arguments by the temporary root directory the
// harness created for the test's fixture files.
const RootToken = "@root"

// RunCLITest provides a standardized harness for integration tests. It
// writes the fixture files into a temporary root, creates any fake store
// entries, substitutes RootToken in the arguments, and runs the full
// parse-load-resolve-render pipeline.
//
// files maps relative paths (e.g. "shells/main.hcl", "devshell.lock") to
// their contents. storeDirs lists relative directories to create, which is
// how tests fake installed package trees under "@root/store".
func RunCLITest(t *testing.T, files map[string]string, storeDirs []string, args []string) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()

	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}
	for _, dir := range storeDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, dir), 0755))
	}

	substituted := make([]string, len(args))
	for i, arg := range args {
		substituted[i] = strings.ReplaceAll(arg, RootToken, tmpDir)
	}

	var outBuf, logBuf SafeBuffer
	appConfig, shouldExit, err := cli.Parse(substituted, &logBuf)
	if err != nil || shouldExit {
		return &HarnessResult{
			Output:    outBuf.String(),
			LogOutput: logBuf.String(),
			Err:       err,
			Exited:    shouldExit,
		}
	}

	devshellApp := app.NewApp(&outBuf, &logBuf, appConfig)
	runErr := devshellApp.Run(context.Background())

	return &HarnessResult{
		Output:    outBuf.String(),
		LogOutput: logBuf.String(),
		Err:       runErr,
	}
}
