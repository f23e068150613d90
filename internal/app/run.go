package app

import (
	"context"
	"fmt"

	"github.com/simontudge/sweepy/internal/config"
	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/materialize"
	"github.com/simontudge/sweepy/internal/sweep"
	"github.com/simontudge/sweepy/internal/visualize"
)

// Run executes every declared sweep in file order: enumerate, run
// trials, aggregate, materialize, render. Per-trial failures are
// recorded inside each run; a spec, write or rendering error aborts
// with the offending sweep named.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.config.Sweeps) == 0 {
		a.logger.Warn("No sweeps declared, nothing to execute.")
		return nil
	}

	for _, sw := range a.config.Sweeps {
		if err := a.runSweep(ctx, appConfig, sw); err != nil {
			return fmt.Errorf("sweep %q failed: %w", sw.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runSweep drives one declared sweep through the full pipeline.
func (a *App) runSweep(ctx context.Context, appConfig *Config, sw *config.Sweep) error {
	a.logger.Info("Starting sweep.", "sweep", sw.Name, "model", sw.ModelType)

	spec := buildSpec(sw)

	registered, ok := a.registry.Model(sw.ModelType)
	if !ok {
		// Validate() already guarantees this; reaching it means a bug.
		return fmt.Errorf("model %q not registered", sw.ModelType)
	}
	adapter, err := registered.Adapter()
	if err != nil {
		return err
	}

	run, err := sweep.Execute(ctx, adapter, sw.ModelType, spec)
	if err != nil {
		return err
	}

	if sw.Output == nil {
		a.logger.Warn("Sweep declares no output block; results discarded.", "sweep", sw.Name)
		return nil
	}

	err = materialize.Write(ctx, run, materialize.Options{
		Directory: sw.Output.Directory,
		Overwrite: sw.Output.Overwrite,
	})
	if err != nil {
		return err
	}

	if appConfig.Plots && sw.Output.Plots {
		err = visualize.Render(ctx, run, visualize.Options{
			Directory: sw.Output.Directory,
			Format:    sw.Output.Format,
		})
		if err != nil {
			return err
		}
	}

	a.logger.Info("Sweep complete.", "sweep", sw.Name, "directory", sw.Output.Directory)
	return nil
}

// buildSpec converts a configured sweep into the engine's spec type.
func buildSpec(sw *config.Sweep) *sweep.Spec {
	spec := &sweep.Spec{
		Fixed:       sw.Fixed,
		Repetitions: sw.Repetitions,
	}
	for _, p := range sw.Parameters {
		spec.Parameters = append(spec.Parameters, sweep.ParameterSpec{Name: p.Name, Values: p.Values})
	}
	return spec
}
