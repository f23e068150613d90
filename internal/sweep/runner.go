package sweep

import (
	"context"
	"fmt"

	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/resultstore"
)

// TrialResult is the raw outcome of one model invocation at one grid
// point. Exactly one of Outputs and Err is set.
type TrialResult struct {
	Point      GridPoint
	Repetition int
	Outputs    map[string]float64
	Err        error
}

// Failed reports whether the trial ended in an invocation error.
func (r TrialResult) Failed() bool {
	return r.Err != nil
}

// Runner invokes the adapted model once per (grid point, repetition)
// pair and records a TrialResult for each, failures included.
type Runner struct {
	adapter *Adapter
	store   *resultstore.Store
}

// NewRunner creates a Runner recording into the given store.
func NewRunner(adapter *Adapter, store *resultstore.Store) *Runner {
	return &Runner{adapter: adapter, store: store}
}

// Run executes every trial of the sweep in enumeration order. A failing
// trial is recorded and the sweep continues; only a canceled context
// stops the loop early, and even then the remaining trials are recorded
// as failed so the aggregate stage stays total over the grid.
func (r *Runner) Run(ctx context.Context, spec *Spec, points []GridPoint) {
	logger := ctxlog.FromContext(ctx)

	for _, point := range points {
		params := point.Assignment(spec)
		for rep := 0; rep < spec.Repetitions; rep++ {
			result := r.runTrial(ctx, point, rep, params)
			if result.Failed() {
				logger.Warn("Trial failed.", "point", point.Index, "repetition", rep, "error", result.Err)
			}
			r.store.Record(point.Index, rep, result)
		}
	}
}

// runTrial is the independent unit of work for one (point, repetition)
// pair. It never panics: a panicking model is converted into a failed
// TrialResult like any other invocation error.
func (r *Runner) runTrial(ctx context.Context, point GridPoint, rep int, params map[string]float64) (result TrialResult) {
	result = TrialResult{Point: point, Repetition: rep}

	defer func() {
		if rec := recover(); rec != nil {
			result.Outputs = nil
			result.Err = &ModelInvocationError{Point: point, Repetition: rep, Err: fmt.Errorf("model panicked: %v", rec)}
		}
	}()

	if err := ctx.Err(); err != nil {
		result.Err = &ModelInvocationError{Point: point, Repetition: rep, Err: err}
		return result
	}

	outputs, err := r.adapter.Invoke(ctx, params)
	if err != nil {
		result.Err = &ModelInvocationError{Point: point, Repetition: rep, Err: err}
		return result
	}
	result.Outputs = outputs
	return result
}
