package sweep

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/resultstore"
)

// Run is the top-level sweep artifact: the spec, the full enumerated
// grid, one aggregated result slice per output variable (flat,
// row-major, reshapeable via Spec.Dims) and provenance. It is what gets
// materialized and rendered.
type Run struct {
	ID          string
	Model       string
	Spec        *Spec
	Points      []GridPoint
	Variables   []string
	Results     map[string][]AggregatedResult
	Failures    []PointFailure
	StartedAt   time.Time
	FinishedAt  time.Time
}

// SweepFunc runs a full sweep of a function-shaped model.
func SweepFunc(ctx context.Context, fn Func, spec *Spec) (*Run, error) {
	adapter, err := AdaptFunc(fn)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, adapter, funcName(fn), spec)
}

// SweepModel runs a full sweep of an object-shaped model, bracketing
// all trials with a single Setup/Teardown pair.
func SweepModel(ctx context.Context, m Stateful, spec *Spec) (*Run, error) {
	adapter, err := AdaptStateful(m)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, adapter, fmt.Sprintf("%T", m), spec)
}

// Execute runs the sweep pipeline against an already-adapted model:
// validate, enumerate, run trials, aggregate. Spec and model-shape
// errors surface before any trial runs; per-trial failures are captured
// in the Run instead of aborting it. The returned Run is complete in
// memory, no I/O happens here.
func Execute(ctx context.Context, adapter *Adapter, modelName string, spec *Spec) (*Run, error) {
	logger := ctxlog.FromContext(ctx)

	points, err := Enumerate(spec)
	if err != nil {
		return nil, err
	}
	logger.Debug("Grid enumerated.", "model", modelName, "points", len(points), "repetitions", spec.Repetitions)

	run := &Run{
		ID:        uuid.NewString(),
		Model:     modelName,
		Spec:      spec,
		Points:    points,
		StartedAt: time.Now(),
	}

	store := resultstore.New()
	runner := NewRunner(adapter, store)

	if err := adapter.Setup(ctx); err != nil {
		return nil, fmt.Errorf("model setup failed: %w", err)
	}
	// Teardown must run even when trials fail mid-grid.
	defer func() {
		if terr := adapter.Teardown(ctx); terr != nil {
			logger.Warn("Model teardown failed.", "model", modelName, "error", terr)
		}
	}()

	runner.Run(ctx, spec, points)

	run.Variables, run.Results, run.Failures = aggregate(spec, points, store)
	run.FinishedAt = time.Now()

	logger.Info("Sweep finished.",
		"model", modelName,
		"run_id", run.ID,
		"points", len(points),
		"variables", len(run.Variables),
		"failed_points", len(run.Failures),
	)
	return run, nil
}

// FailedPoints reports the indices of grid points with at least one
// failed trial, in enumeration order.
func (r *Run) FailedPoints() []int {
	indices := make([]int, 0, len(r.Failures))
	for _, f := range r.Failures {
		indices = append(indices, f.Point.Index)
	}
	return indices
}

// funcName reports the symbol name of a function-shaped model, the
// closest Go analogue to a function's declared name.
func funcName(fn Func) string {
	if fn == nil {
		return "<nil>"
	}
	if f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()); f != nil {
		return f.Name()
	}
	return "<func>"
}
