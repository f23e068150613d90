// Package visualize renders a finished sweep run into figures, one per
// output variable, delegating all drawing to gonum/plot. One swept
// parameter produces a line graph, two produce a heat map, and anything
// higher-dimensional is refused outright rather than silently sliced.
package visualize

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/materialize"
	"github.com/simontudge/sweepy/internal/sweep"
)

// UnsupportedDimensionalityError reports a rendering request for more
// swept dimensions than any supported figure can show.
type UnsupportedDimensionalityError struct {
	Dimensions int
}

// Error implements the error interface for UnsupportedDimensionalityError.
func (e *UnsupportedDimensionalityError) Error() string {
	return fmt.Sprintf("cannot render %d swept parameters; figures support at most 2", e.Dimensions)
}

// Options configures figure output.
type Options struct {
	Directory string
	Format    string // file extension understood by gonum/plot, e.g. "png", "svg", "pdf"
}

// Render writes one figure per output variable into that variable's
// subdirectory under Options.Directory. Axis labels carry the parameter
// and variable names from the spec verbatim. With more than two swept
// parameters it returns an *UnsupportedDimensionalityError before
// creating any file.
func Render(ctx context.Context, run *sweep.Run, opts Options) error {
	logger := ctxlog.FromContext(ctx)

	dims := len(run.Spec.Parameters)
	if dims > 2 {
		return &UnsupportedDimensionalityError{Dimensions: dims}
	}
	format := opts.Format
	if format == "" {
		format = "png"
	}

	for _, variable := range run.Variables {
		varDir := filepath.Join(opts.Directory, variable)
		if err := os.MkdirAll(varDir, 0o755); err != nil {
			return fmt.Errorf("failed to create figure directory %s: %w", varDir, err)
		}

		var (
			fig *plot.Plot
			err error
		)
		if dims == 1 {
			fig, err = lineFigure(run, variable)
		} else {
			fig, err = heatMapFigure(run, variable)
		}
		if err != nil {
			return fmt.Errorf("failed to build figure for %s: %w", variable, err)
		}

		path := filepath.Join(varDir, fmt.Sprintf("%s.%s", run.Spec.Parameters[0].Name, format))
		if err := fig.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return fmt.Errorf("failed to save figure %s: %w", path, err)
		}
		logger.Debug("Figure written.", "variable", variable, "path", path)
	}
	return nil
}

// lineFigure plots one variable's mean against the single swept
// parameter. Grid points with no data are skipped.
func lineFigure(run *sweep.Run, variable string) (*plot.Plot, error) {
	param := run.Spec.Parameters[0]
	results := run.Results[variable]

	xys := make(plotter.XYs, 0, len(results))
	for i, res := range results {
		if res.Mean == nil {
			continue
		}
		xys = append(xys, plotter.XY{X: param.Values[i], Y: *res.Mean})
	}

	fig := plot.New()
	fig.Title.Text = variable
	fig.X.Label.Text = param.Name
	fig.Y.Label.Text = variable
	if err := plotutil.AddLinePoints(fig, variable, xys); err != nil {
		return nil, err
	}
	return fig, nil
}

// heatMapFigure plots one variable over two swept parameters: the
// first-declared parameter on x, the second on y. Missing grid points
// stay NaN and are excluded from the color range.
func heatMapFigure(run *sweep.Run, variable string) (*plot.Plot, error) {
	xParam := run.Spec.Parameters[0]
	yParam := run.Spec.Parameters[1]
	grid := materialize.BuildGrid(run, variable)

	data := &resultGrid{x: xParam.Values, y: yParam.Values, z: grid.Values}
	hm := plotter.NewHeatMap(data, moreland.SmoothBlueRed().Palette(255))
	hm.Min, hm.Max = finiteRange(grid.Values)

	fig := plot.New()
	fig.Title.Text = variable
	fig.X.Label.Text = xParam.Name
	fig.Y.Label.Text = yParam.Name
	fig.Add(hm)
	return fig, nil
}

// resultGrid adapts a flat row-major result array (first parameter
// slowest) to plotter.GridXYZ.
type resultGrid struct {
	x, y []float64
	z    []float64
}

func (g *resultGrid) Dims() (c, r int)   { return len(g.x), len(g.y) }
func (g *resultGrid) X(c int) float64    { return g.x[c] }
func (g *resultGrid) Y(r int) float64    { return g.y[r] }
func (g *resultGrid) Z(c, r int) float64 { return g.z[c*len(g.y)+r] }

// finiteRange returns the min and max over the finite entries, so NaN
// sentinels for failed points cannot poison the color scale.
func finiteRange(values []float64) (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		return 0, 1
	}
	if min == max {
		// Degenerate range; pad so the palette has width to map onto.
		return min - 0.5, max + 0.5
	}
	return min, max
}
