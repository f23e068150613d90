// Package materialize persists a finished sweep run to disk: one
// subdirectory per output variable holding the gob-encoded result grid,
// a run.json provenance record and a human-readable README.txt summary.
package materialize

import (
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/sweep"
)

// DataFileName is the per-variable serialized array file.
const DataFileName = "data.gob"

// readmeFileName and runFileName mark a directory as holding a sweep
// run artifact; their presence triggers the overwrite check.
const (
	readmeFileName = "README.txt"
	runFileName    = "run.json"
	metaFileName   = "meta.json"
)

// OutputWriteError reports a refusal to write into a directory that
// already contains a sweep run artifact.
type OutputWriteError struct {
	Directory string
}

// Error implements the error interface for OutputWriteError.
func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("output directory %q already contains a sweep run; pass overwrite to replace it", e.Directory)
}

// Options configures where and how a run is written.
type Options struct {
	Directory string
	Overwrite bool
}

// Grid is the serialized form of one output variable's results. Values
// and Stddev are flat row-major arrays over the swept parameters;
// reshaping needs only Dims. A NaN in Values marks a grid point with no
// data; Stddev is nil when dispersion was undefined for the whole run
// (single repetition).
type Grid struct {
	Variable string
	Params   []string
	Dims     []int
	Values   []float64
	Stddev   []float64
}

// Write persists the run. The full directory tree is created if absent.
// A directory already holding a run artifact is refused with an
// *OutputWriteError unless Overwrite is set; in that case nothing is
// modified.
func Write(ctx context.Context, run *sweep.Run, opts Options) error {
	logger := ctxlog.FromContext(ctx)

	if err := os.MkdirAll(opts.Directory, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", opts.Directory, err)
	}
	if !opts.Overwrite && containsRun(opts.Directory) {
		return &OutputWriteError{Directory: opts.Directory}
	}

	for _, variable := range run.Variables {
		if err := writeVariable(run, variable, opts.Directory); err != nil {
			return err
		}
	}
	if err := writeProvenance(run, opts.Directory); err != nil {
		return err
	}
	if err := writeReadme(run, filepath.Join(opts.Directory, readmeFileName)); err != nil {
		return err
	}

	logger.Info("Run materialized.", "run_id", run.ID, "directory", opts.Directory, "variables", len(run.Variables))
	return nil
}

// containsRun reports whether the directory already holds the artifact
// files this package writes.
func containsRun(dir string) bool {
	for _, name := range []string{readmeFileName, runFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// writeVariable writes one variable's subdirectory: the gob grid and a
// small JSON sidecar describing its shape for non-Go consumers.
func writeVariable(run *sweep.Run, variable, dir string) error {
	varDir := filepath.Join(dir, variable)
	if err := os.MkdirAll(varDir, 0o755); err != nil {
		return fmt.Errorf("failed to create variable directory %s: %w", varDir, err)
	}

	grid := BuildGrid(run, variable)

	f, err := os.Create(filepath.Join(varDir, DataFileName))
	if err != nil {
		return fmt.Errorf("failed to create data file for %s: %w", variable, err)
	}
	defer f.Close()
	if err := gob.NewEncoder(f).Encode(grid); err != nil {
		return fmt.Errorf("failed to encode data for %s: %w", variable, err)
	}

	meta := map[string]any{
		"variable":   grid.Variable,
		"parameters": grid.Params,
		"dims":       grid.Dims,
		"layout":     "row-major",
	}
	return writeJSON(filepath.Join(varDir, metaFileName), meta)
}

// BuildGrid flattens one variable's aggregated results into its
// serialized Grid form.
func BuildGrid(run *sweep.Run, variable string) *Grid {
	results := run.Results[variable]
	grid := &Grid{
		Variable: variable,
		Params:   run.Spec.Names(),
		Dims:     run.Spec.Dims(),
		Values:   make([]float64, len(results)),
	}
	if run.Spec.Repetitions > 1 {
		grid.Stddev = make([]float64, len(results))
	}
	for i, res := range results {
		grid.Values[i] = math.NaN()
		if res.Mean != nil {
			grid.Values[i] = *res.Mean
		}
		if grid.Stddev != nil {
			grid.Stddev[i] = math.NaN()
			if res.Stddev != nil {
				grid.Stddev[i] = *res.Stddev
			}
		}
	}
	return grid
}

// runRecord is the run.json provenance document.
type runRecord struct {
	ID           string             `json:"id"`
	Model        string             `json:"model"`
	Repetitions  int                `json:"repetitions"`
	Parameters   []parameterRecord  `json:"parameters"`
	Fixed        map[string]float64 `json:"fixed,omitempty"`
	Variables    []string           `json:"variables"`
	FailedPoints []int              `json:"failed_points,omitempty"`
	StartedAt    string             `json:"started_at"`
	FinishedAt   string             `json:"finished_at"`
}

type parameterRecord struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func writeProvenance(run *sweep.Run, dir string) error {
	record := runRecord{
		ID:           run.ID,
		Model:        run.Model,
		Repetitions:  run.Spec.Repetitions,
		Fixed:        run.Spec.Fixed,
		Variables:    run.Variables,
		FailedPoints: run.FailedPoints(),
		StartedAt:    run.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		FinishedAt:   run.FinishedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for _, p := range run.Spec.Parameters {
		record.Parameters = append(record.Parameters, parameterRecord{Name: p.Name, Values: p.Values})
	}
	return writeJSON(filepath.Join(dir, runFileName), record)
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
