package sweep

// GridPoint is one concrete assignment of every swept parameter to a
// single value. Values are aligned with Spec.Parameters; Index is the
// point's position in the flat row-major enumeration order.
type GridPoint struct {
	Index  int
	Values []float64
}

// Enumerate expands the spec into the Cartesian product of all
// parameter value sequences, in row-major order: the first-declared
// parameter varies slowest. The output is deterministic, so calling it
// again on the same spec yields an identical sequence and consumers can
// reshape the flat slice using Spec.Dims alone.
func Enumerate(spec *Spec) ([]GridPoint, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	dims := spec.Dims()
	points := make([]GridPoint, spec.Size())

	// Odometer over the value indices, last axis fastest.
	idx := make([]int, len(dims))
	for i := range points {
		values := make([]float64, len(dims))
		for axis, v := range idx {
			values[axis] = spec.Parameters[axis].Values[v]
		}
		points[i] = GridPoint{Index: i, Values: values}

		for axis := len(idx) - 1; axis >= 0; axis-- {
			idx[axis]++
			if idx[axis] < dims[axis] {
				break
			}
			idx[axis] = 0
		}
	}
	return points, nil
}

// Assignment builds the named parameter map passed to the model for
// this point: the swept values plus the spec's fixed parameters.
func (p GridPoint) Assignment(spec *Spec) map[string]float64 {
	params := make(map[string]float64, len(p.Values)+len(spec.Fixed))
	for name, v := range spec.Fixed {
		params[name] = v
	}
	for i, ps := range spec.Parameters {
		params[ps.Name] = p.Values[i]
	}
	return params
}
