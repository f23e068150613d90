// Package oscillator provides a stateful example model: a damped
// harmonic oscillator evaluated analytically. It exists mainly to
// exercise the object-shaped model path, with Setup/Teardown bracketing
// the sweep.
package oscillator

import (
	"context"
	"fmt"
	"math"

	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/registry"
	"github.com/simontudge/sweepy/internal/sweep"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Oscillator is a damped harmonic oscillator x(t) = A*exp(-gamma*t)*cos(omega*t).
type Oscillator struct {
	amplitude float64
	ready     bool
}

// New returns an un-setup oscillator with unit amplitude.
func New() *Oscillator {
	return &Oscillator{amplitude: 1}
}

// Setup runs once per sweep, before the first trial.
func (o *Oscillator) Setup(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("Oscillator setup.")
	o.ready = true
	return nil
}

// Evaluate computes displacement and energy at time t for the given
// decay rate gamma and angular frequency omega. The optional fixed
// parameter A scales the amplitude.
func (o *Oscillator) Evaluate(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	if !o.ready {
		return nil, fmt.Errorf("oscillator evaluated before setup")
	}

	t := params["t"]
	gamma := params["gamma"]
	omega := params["omega"]
	amplitude := o.amplitude
	if a, ok := params["A"]; ok {
		amplitude = a
	}

	envelope := amplitude * math.Exp(-gamma*t)
	displacement := envelope * math.Cos(omega*t)

	return map[string]float64{
		"displacement": displacement,
		"energy":       0.5 * envelope * envelope,
	}, nil
}

// Teardown runs once per sweep, after the last trial, failures
// included.
func (o *Oscillator) Teardown(ctx context.Context) error {
	ctxlog.FromContext(ctx).Debug("Oscillator teardown.")
	o.ready = false
	return nil
}

// Register registers the model with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModel("oscillator", &registry.RegisteredModel{
		Description: "Damped harmonic oscillator, stateful model form.",
		New:         func() sweep.Stateful { return New() },
	})
}
