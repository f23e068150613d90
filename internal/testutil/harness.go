// Package testutil provides the shared harness for integration tests:
// it writes HCL fixtures into a temp directory, builds an App with
// injected models and captures its log output.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simontudge/sweepy/internal/app"
	"github.com/simontudge/sweepy/internal/hcl"
	"github.com/simontudge/sweepy/internal/registry"
)

// OutDirToken is replaced in fixture file contents with the per-test
// output directory, so fixtures can declare absolute output paths
// without knowing the temp dir.
const OutDirToken = "@OUTDIR@"

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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
	LogOutput string
	Err       error
	OutDir    string
	App       *app.App
}

// FuncModule is a minimal registry.Module registering one
// function-shaped model under a name, for tests that bring their own
// model.
type FuncModule struct {
	Name  string
	Model *registry.RegisteredModel
}

// Register implements registry.Module.
func (m *FuncModule) Register(r *registry.Registry) {
	r.RegisterModel(m.Name, m.Model)
}

// RunSweepTest writes the given fixture files, constructs an App with
// the provided modules and runs it end to end. Startup panics are
// recovered into the result's Err, matching how main treats them.
func RunSweepTest(t *testing.T, files map[string]string, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-sweepy-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	sweepDir := filepath.Join(tmpDir, "sweeps")
	outDir := filepath.Join(tmpDir, "out")
	require.NoError(t, os.Mkdir(sweepDir, 0o755))

	for name, content := range files {
		filePath := filepath.Join(sweepDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		content = strings.ReplaceAll(content, OutDirToken, outDir)
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}

	appConfig := &app.Config{
		SweepPath: sweepDir,
		LogLevel:  "debug",
		LogFormat: "text",
		Plots:     true,
	}

	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(logBuffer, appConfig, hcl.NewLoader(), modules...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
			OutDir:    outDir,
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)

	return &HarnessResult{
		LogOutput: logBuffer.String(),
		Err:       runErr,
		OutDir:    outDir,
		App:       testApp,
	}
}
