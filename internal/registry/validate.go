package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/simontudge/sweepy/internal/config"
	"github.com/simontudge/sweepy/internal/ctxlog"
)

// Validate checks the loaded configuration against the registry before
// any sweep runs: every declared sweep must reference a registered
// model, and every registration must resolve to exactly one model
// shape. This is the fail-fast gate, so a typo in a sweep file cannot
// surface halfway through a long run.
func (r *Registry) Validate(ctx context.Context, model *config.Model) error {
	logger := ctxlog.FromContext(ctx)

	for _, sw := range model.Sweeps {
		registered, ok := r.Model(sw.ModelType)
		if !ok {
			return fmt.Errorf("sweep %q references unknown model %q (registered models: %s)",
				sw.Name, sw.ModelType, strings.Join(r.Names(), ", "))
		}
		if _, err := registered.Adapter(); err != nil {
			return fmt.Errorf("sweep %q: %w", sw.Name, err)
		}
	}

	logger.Debug("Registry validation passed.", "sweeps", len(model.Sweeps), "models", len(r.models))
	return nil
}
