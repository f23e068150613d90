package sweep

import "fmt"

// ParameterSpec names one swept parameter and the ordered sequence of
// values it takes. Declaration order in Spec.Parameters fixes the axis
// order of every result array produced downstream.
type ParameterSpec struct {
	Name   string
	Values []float64
}

// Linspace builds a ParameterSpec of count evenly spaced values from
// from to to, both endpoints inclusive. A count of one yields just from.
func Linspace(name string, from, to float64, count int) ParameterSpec {
	values := make([]float64, count)
	if count == 1 {
		values[0] = from
		return ParameterSpec{Name: name, Values: values}
	}
	step := (to - from) / float64(count-1)
	for i := range values {
		values[i] = from + step*float64(i)
	}
	// Pin the endpoint exactly; accumulated float steps can miss it.
	if count > 1 {
		values[count-1] = to
	}
	return ParameterSpec{Name: name, Values: values}
}

// Spec is the declarative description of one sweep: which parameters to
// vary over which values, constant parameters passed to every
// invocation, and how many repeated trials to run per grid point.
type Spec struct {
	Parameters  []ParameterSpec
	Fixed       map[string]float64
	Repetitions int
}

// Validate checks the structural invariants of the spec. It returns an
// *InvalidSpecError describing the first violation found.
func (s *Spec) Validate() error {
	if len(s.Parameters) == 0 {
		return &InvalidSpecError{Reason: "no sweep parameters declared"}
	}
	if s.Repetitions < 1 {
		return &InvalidSpecError{Reason: fmt.Sprintf("repetitions must be at least 1, got %d", s.Repetitions)}
	}
	seen := make(map[string]struct{}, len(s.Parameters))
	for _, p := range s.Parameters {
		if p.Name == "" {
			return &InvalidSpecError{Reason: "parameter with empty name"}
		}
		if len(p.Values) == 0 {
			return &InvalidSpecError{Reason: fmt.Sprintf("parameter %q has no values", p.Name)}
		}
		if _, dup := seen[p.Name]; dup {
			return &InvalidSpecError{Reason: fmt.Sprintf("duplicate parameter name %q", p.Name)}
		}
		seen[p.Name] = struct{}{}
		if _, clash := s.Fixed[p.Name]; clash {
			return &InvalidSpecError{Reason: fmt.Sprintf("parameter %q is both swept and fixed", p.Name)}
		}
	}
	return nil
}

// Dims returns the length of each parameter's value sequence in
// declaration order. The flat result arrays reshape into these
// dimensions row-major.
func (s *Spec) Dims() []int {
	dims := make([]int, len(s.Parameters))
	for i, p := range s.Parameters {
		dims[i] = len(p.Values)
	}
	return dims
}

// Names returns the parameter names in declaration order.
func (s *Spec) Names() []string {
	names := make([]string, len(s.Parameters))
	for i, p := range s.Parameters {
		names[i] = p.Name
	}
	return names
}

// Size returns the total number of grid points the spec expands into.
func (s *Spec) Size() int {
	total := 1
	for _, p := range s.Parameters {
		total *= len(p.Values)
	}
	return total
}
