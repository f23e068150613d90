package config

import "context"

// Parameter is one swept parameter with its value sequence already
// expanded (explicit lists and linspace ranges look identical here).
type Parameter struct {
	Name   string
	Values []float64
}

// Output describes where one sweep's artifacts are written.
type Output struct {
	Directory string
	Overwrite bool
	Format    string
	Plots     bool
}

// Sweep is the format-agnostic description of one declared sweep.
type Sweep struct {
	ModelType   string
	Name        string
	Repetitions int
	Parameters  []*Parameter
	Fixed       map[string]float64
	Output      *Output
}

// Model is the root of all loaded configuration: every sweep declared
// across every discovered file, in file order.
type Model struct {
	Sweeps []*Sweep
}

// Loader abstracts the configuration format from the engine. The HCL
// implementation lives in internal/hcl.
type Loader interface {
	Load(ctx context.Context, paths ...string) (*Model, error)
}
