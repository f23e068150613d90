// Package noisygauss provides a nondeterministic example model that
// samples a normal distribution, giving repeated trials something real
// to average.
package noisygauss

import (
	"context"
	"math/rand/v2"

	"github.com/simontudge/sweepy/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Evaluate draws one sample from N(mu, sigma^2). sigma defaults to 1
// when not supplied.
func Evaluate(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	mu := params["mu"]
	sigma, ok := params["sigma"]
	if !ok {
		sigma = 1
	}

	return map[string]float64{"sample": mu + sigma*rand.NormFloat64()}, nil
}

// Register registers the model with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterModel("noisygauss", &registry.RegisteredModel{
		Description: "Gaussian sampler, one draw from N(mu, sigma^2) per trial.",
		Fn:          Evaluate,
	})
}
