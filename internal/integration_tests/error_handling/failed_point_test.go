package integration_tests

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simontudge/sweepy/internal/registry"
	"github.com/simontudge/sweepy/internal/testutil"
)

// TestErrorHandling_FailedPointIsRecordedNotFatal verifies that one
// failing grid point neither aborts the sweep nor disappears: the run
// completes and the README names the failed point.
func TestErrorHandling_FailedPointIsRecordedNotFatal(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	sweepHCL := `
		sweep "flaky" "partial" {
			parameter "x" { values = [1, 2, 3] }
			output {
				directory = "@OUTDIR@/partial"
				plots     = false
			}
		}
	`
	files := map[string]string{"main.hcl": sweepHCL}

	module := &testutil.FuncModule{
		Name: "flaky",
		Model: &registry.RegisteredModel{
			Fn: func(ctx context.Context, p map[string]float64) (map[string]float64, error) {
				if p["x"] == 2 {
					return nil, errors.New("solver diverged")
				}
				return map[string]float64{"y": p["x"]}, nil
			},
		},
	}

	// --- Act ---
	result := testutil.RunSweepTest(t, files, module)

	// --- Assert ---
	require.NoError(t, result.Err, "a failing grid point must not fail the sweep")

	readme, err := os.ReadFile(filepath.Join(result.OutDir, "partial", "README.txt"))
	require.NoError(t, err)
	require.Contains(t, string(readme), "Failed grid point(s):")
	require.Contains(t, string(readme), "solver diverged")
	require.Contains(t, result.LogOutput, "Trial failed.")
}
