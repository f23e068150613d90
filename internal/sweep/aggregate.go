package sweep

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/simontudge/sweepy/internal/resultstore"
)

// AggregatedResult combines the repeated trials for one (grid point,
// output variable) pair. A nil Mean is the no-data sentinel: every
// repetition at that point failed to observe the variable. A nil Stddev
// means dispersion is undefined, which is distinct from zero: it occurs
// with a single repetition or with no data at all.
type AggregatedResult struct {
	Mean     *float64
	Stddev   *float64
	Failures int
}

// PointFailure records the diagnostics for a grid point at which at
// least one trial failed.
type PointFailure struct {
	Point  GridPoint
	Errors []string
}

// aggregate reduces the recorded trials to one AggregatedResult per
// (point, variable). The variable set is the union of output names over
// all successful trials, sorted for determinism; a variable absent from
// some trial counts as a failed observation at that point. The returned
// result slices are flat row-major over the grid, one slice per
// variable, so the function is total over every point even when all its
// trials failed.
func aggregate(spec *Spec, points []GridPoint, store *resultstore.Store) (variables []string, results map[string][]AggregatedResult, failures []PointFailure) {
	nameSet := make(map[string]struct{})
	for _, point := range points {
		for rep := 0; rep < spec.Repetitions; rep++ {
			trial, ok := store.Get(point.Index, rep)
			if !ok {
				continue
			}
			for name := range trial.(TrialResult).Outputs {
				nameSet[name] = struct{}{}
			}
		}
	}
	variables = make([]string, 0, len(nameSet))
	for name := range nameSet {
		variables = append(variables, name)
	}
	sort.Strings(variables)

	results = make(map[string][]AggregatedResult, len(variables))
	for _, name := range variables {
		results[name] = make([]AggregatedResult, len(points))
	}

	for _, point := range points {
		var errs []string
		samples := make(map[string][]float64, len(variables))

		for rep := 0; rep < spec.Repetitions; rep++ {
			raw, ok := store.Get(point.Index, rep)
			if !ok {
				continue
			}
			trial := raw.(TrialResult)
			if trial.Failed() {
				errs = append(errs, trial.Err.Error())
				continue
			}
			for name, v := range trial.Outputs {
				samples[name] = append(samples[name], v)
			}
		}

		for _, name := range variables {
			results[name][point.Index] = reduce(samples[name], spec.Repetitions)
		}
		if len(errs) > 0 {
			failures = append(failures, PointFailure{Point: point, Errors: errs})
		}
	}
	return variables, results, failures
}

// reduce collapses one variable's samples at one grid point.
func reduce(samples []float64, repetitions int) AggregatedResult {
	res := AggregatedResult{Failures: repetitions - len(samples)}
	if len(samples) == 0 {
		return res
	}
	if len(samples) == 1 {
		res.Mean = &samples[0]
		return res
	}
	// Sample standard deviation (n-1 denominator), per gonum stat.
	mean, std := stat.MeanStdDev(samples, nil)
	res.Mean = &mean
	res.Stddev = &std
	return res
}
