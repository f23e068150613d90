package integration_tests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simontudge/sweepy/internal/registry"
	"github.com/simontudge/sweepy/internal/testutil"
)

func constantModule() *testutil.FuncModule {
	return &testutil.FuncModule{
		Name: "constant",
		Model: &registry.RegisteredModel{
			Fn: func(ctx context.Context, p map[string]float64) (map[string]float64, error) {
				return map[string]float64{"y": 1}, nil
			},
		},
	}
}

// TestErrorHandling_PopulatedOutputDirectoryRefused runs two sweeps
// into the same directory: the second must fail with the collision
// error and leave the first run's artifacts untouched, unless it sets
// overwrite.
func TestErrorHandling_PopulatedOutputDirectoryRefused(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	first := `
		sweep "constant" "first" {
			parameter "x" { values = [1] }
			output {
				directory = "@OUTDIR@/shared"
				plots     = false
			}
		}
	`

	// --- Act ---
	result := testutil.RunSweepTest(t, map[string]string{"main.hcl": first}, constantModule())
	require.NoError(t, result.Err)

	runJSON := filepath.Join(result.OutDir, "shared", "run.json")
	before, err := os.ReadFile(runJSON)
	require.NoError(t, err)

	// Same target directory, no overwrite flag.
	second := `
		sweep "constant" "second" {
			parameter "x" { values = [1] }
			output {
				directory = "` + filepath.Join(result.OutDir, "shared") + `"
				plots     = false
			}
		}
	`
	collision := testutil.RunSweepTest(t, map[string]string{"main.hcl": second}, constantModule())

	// --- Assert ---
	require.Error(t, collision.Err)
	require.ErrorContains(t, collision.Err, "already contains a sweep run")

	after, err := os.ReadFile(runJSON)
	require.NoError(t, err)
	require.Equal(t, before, after, "refused write must not modify existing artifacts")

	// With overwrite set the same declaration succeeds.
	third := `
		sweep "constant" "third" {
			parameter "x" { values = [1] }
			output {
				directory = "` + filepath.Join(result.OutDir, "shared") + `"
				overwrite = true
				plots     = false
			}
		}
	`
	replaced := testutil.RunSweepTest(t, map[string]string{"main.hcl": third}, constantModule())
	require.NoError(t, replaced.Err)
}
