package schema

import "github.com/hashicorp/hcl/v2"

// --- Primary Sweep Structures ---

// FixedBlock holds the constant parameters passed to every model
// invocation. Its attributes are free-form, so the body is kept raw and
// decoded by the loader.
type FixedBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// ParameterBlock declares one swept parameter: either an explicit value
// list or an inclusive linspace range (from, to, count). Declaration
// order fixes the axis order of the result arrays.
type ParameterBlock struct {
	Name   string    `hcl:"name,label"`
	Values []float64 `hcl:"values,optional"`
	From   *float64  `hcl:"from,optional"`
	To     *float64  `hcl:"to,optional"`
	Count  *int      `hcl:"count,optional"`
}

// OutputBlock declares where the sweep's artifacts go.
type OutputBlock struct {
	Directory string `hcl:"directory"`
	Overwrite bool   `hcl:"overwrite,optional"`
	Format    string `hcl:"format,optional"`
	Plots     *bool  `hcl:"plots,optional"`
}

// Sweep represents a `sweep` block from a user's file: one model swept
// across one parameter grid.
type Sweep struct {
	ModelType   string            `hcl:"model_type,label"`
	Name        string            `hcl:"sweep_name,label"`
	Repetitions *int              `hcl:"repetitions,optional"`
	Parameters  []*ParameterBlock `hcl:"parameter,block"`
	Fixed       *FixedBlock       `hcl:"fixed,block"`
	Output      *OutputBlock      `hcl:"output,block"`
}

// SweepConfig represents the top-level structure of a user's sweep
// file, containing all declared sweeps.
type SweepConfig struct {
	Sweeps []*Sweep `hcl:"sweep,block"`
	Body   hcl.Body `hcl:",remain"`
}
