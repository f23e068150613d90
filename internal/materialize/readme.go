package materialize

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/simontudge/sweepy/internal/sweep"
)

// writeReadme renders the top-level README.txt: what was swept, over
// what values, how many repetitions, and which grid points failed.
func writeReadme(run *sweep.Run, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Automatic parameter sweep generated by sweepy\n\n")
	fmt.Fprintf(&b, "Run ID:   %s\n", run.ID)
	fmt.Fprintf(&b, "Model:    %s\n", run.Model)
	fmt.Fprintf(&b, "Began at  %s\n", run.StartedAt.Format("Mon Jan  2 15:04:05 2006"))
	fmt.Fprintf(&b, "Ended at  %s\n\n", run.FinishedAt.Format("Mon Jan  2 15:04:05 2006"))

	fmt.Fprintf(&b, "Sweep parameter(s):\n")
	for _, p := range run.Spec.Parameters {
		if len(p.Values) == 1 {
			fmt.Fprintf(&b, "  %s fixed at %g (1 value)\n", p.Name, p.Values[0])
			continue
		}
		fmt.Fprintf(&b, "  %s from %g to %g in %d steps\n", p.Name, p.Values[0], p.Values[len(p.Values)-1], len(p.Values))
	}

	if len(run.Spec.Fixed) > 0 {
		fmt.Fprintf(&b, "\nFixed parameters:\n")
		for _, name := range sortedKeys(run.Spec.Fixed) {
			fmt.Fprintf(&b, "  %s = %g\n", name, run.Spec.Fixed[name])
		}
	}

	fmt.Fprintf(&b, "\nRepetitions per grid point: %d", run.Spec.Repetitions)
	if run.Spec.Repetitions > 1 {
		fmt.Fprintf(&b, " (dispersion reported as sample std dev)")
	}
	fmt.Fprintf(&b, "\nOutput variable(s): %s\n", strings.Join(run.Variables, ", "))

	if len(run.Failures) > 0 {
		fmt.Fprintf(&b, "\nFailed grid point(s):\n")
		for _, f := range run.Failures {
			fmt.Fprintf(&b, "  point %d %v: %s\n", f.Point.Index, f.Point.Values, f.Errors[0])
		}
	} else {
		fmt.Fprintf(&b, "\nAll grid points completed successfully.\n")
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
