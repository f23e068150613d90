// Package polynomial provides a function-shaped example model: a
// quadratic in x with configurable coefficients.
package polynomial

import (
	"context"

	"github.com/simontudge/sweepy/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate computes y = a*x^2 + b*x + c. The coefficients default to
// a=1, b=0, c=0 when not supplied as fixed parameters.
func Evaluate(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	x := params["x"]
	a, ok := params["a"]
	if !ok {
		a = 1
	}
	b := params["b"]
	c := params["c"]

	return map[string]float64{"y": a*x*x + b*x + c}, nil
}

// Register registers the model with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModel("polynomial", &registry.RegisteredModel{
		Description: "Quadratic polynomial y = a*x^2 + b*x + c.",
		Fn:          Evaluate,
	})
}
