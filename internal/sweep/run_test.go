package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func doubler(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	return map[string]float64{"y": params["x"] * 2}, nil
}

func TestSweepFunc_SingleParameter(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Parameters:  []ParameterSpec{{Name: "x", Values: []float64{1, 2, 3}}},
		Repetitions: 1,
	}

	run, err := SweepFunc(context.Background(), doubler, spec)
	require.NoError(t, err)

	require.Len(t, run.Points, 3)
	require.Equal(t, []string{"y"}, run.Variables)
	require.NotEmpty(t, run.ID)
	require.False(t, run.FinishedAt.Before(run.StartedAt))

	results := run.Results["y"]
	require.Len(t, results, 3)
	for i, want := range []float64{2, 4, 6} {
		require.NotNil(t, results[i].Mean)
		require.Equal(t, want, *results[i].Mean)
		// Single repetition: dispersion is undefined, never zero.
		require.Nil(t, results[i].Stddev)
	}
	require.Empty(t, run.Failures)
}

func TestSweepFunc_TwoParametersWithRepetitions(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Parameters: []ParameterSpec{
			{Name: "x", Values: []float64{0, 1}},
			{Name: "y", Values: []float64{0, 1}},
		},
		Repetitions: 3,
	}
	sum := func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		return map[string]float64{"z": params["x"] + params["y"]}, nil
	}

	run, err := SweepFunc(context.Background(), sum, spec)
	require.NoError(t, err)

	// Flat row-major 2x2: [[0,1],[1,2]].
	results := run.Results["z"]
	require.Len(t, results, 4)
	for i, want := range []float64{0, 1, 1, 2} {
		require.NotNil(t, results[i].Mean)
		require.Equal(t, want, *results[i].Mean)
		// Deterministic model: dispersion is defined and zero.
		require.NotNil(t, results[i].Stddev)
		require.InDelta(t, 0, *results[i].Stddev, 1e-12)
	}
}

func TestSweepFunc_FailedPointDoesNotAbortSweep(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Parameters:  []ParameterSpec{{Name: "x", Values: []float64{1, 2, 3}}},
		Repetitions: 1,
	}
	flaky := func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		if params["x"] == 2 {
			return nil, errors.New("singular matrix")
		}
		return map[string]float64{"y": params["x"]}, nil
	}

	run, err := SweepFunc(context.Background(), flaky, spec)
	require.NoError(t, err)

	results := run.Results["y"]
	require.NotNil(t, results[0].Mean)
	require.NotNil(t, results[2].Mean)

	// The failed point is the no-data sentinel, with diagnostics kept.
	require.Nil(t, results[1].Mean)
	require.Nil(t, results[1].Stddev)
	require.Equal(t, 1, results[1].Failures)
	require.Equal(t, []int{1}, run.FailedPoints())
	require.Contains(t, run.Failures[0].Errors[0], "singular matrix")
}

func TestSweepFunc_PanickingModelIsCaptured(t *testing.T) {
	t.Parallel()

	spec := &Spec{
		Parameters:  []ParameterSpec{{Name: "x", Values: []float64{1, 2}}},
		Repetitions: 1,
	}
	boom := func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		if params["x"] == 1 {
			panic("index out of range")
		}
		return map[string]float64{"y": 1}, nil
	}

	run, err := SweepFunc(context.Background(), boom, spec)
	require.NoError(t, err)
	require.Equal(t, []int{0}, run.FailedPoints())
	require.Contains(t, run.Failures[0].Errors[0], "model panicked")
}

func TestSweepFunc_InvalidSpecFailsBeforeAnyTrial(t *testing.T) {
	t.Parallel()

	invocations := 0
	fn := func(ctx context.Context, params map[string]float64) (map[string]float64, error) {
		invocations++
		return map[string]float64{"y": 1}, nil
	}

	_, err := SweepFunc(context.Background(), fn, &Spec{Repetitions: 1})
	var specErr *InvalidSpecError
	require.ErrorAs(t, err, &specErr)
	require.Zero(t, invocations)
}

func TestSweepModel_TeardownRunsAfterFailures(t *testing.T) {
	t.Parallel()

	model := &recordingModel{evalErr: errors.New("diverged")}
	spec := &Spec{
		Parameters:  []ParameterSpec{{Name: "x", Values: []float64{1, 2, 3}}},
		Repetitions: 2,
	}

	run, err := SweepModel(context.Background(), model, spec)
	require.NoError(t, err)

	require.Equal(t, 1, model.setups)
	require.Equal(t, 6, model.evals)
	require.Equal(t, 1, model.teardowns)
	require.Len(t, run.Failures, 3)
	// No trial succeeded, so no output variable was ever observed.
	require.Empty(t, run.Variables)
}

func TestSweepFunc_CanceledContextFailsRemainingTrials(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	spec := &Spec{
		Parameters:  []ParameterSpec{{Name: "x", Values: []float64{1, 2}}},
		Repetitions: 1,
	}

	run, err := SweepFunc(ctx, doubler, spec)
	require.NoError(t, err)
	require.Len(t, run.FailedPoints(), 2)
}
