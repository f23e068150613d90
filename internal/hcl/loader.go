// Package hcl implements the config.Loader interface on top of
// hashicorp/hcl: it discovers .hcl files, decodes sweep blocks and
// translates them into the format-agnostic config model.
package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/simontudge/sweepy/internal/config"
	"github.com/simontudge/sweepy/internal/ctxlog"
	"github.com/simontudge/sweepy/internal/fsutil"
	"github.com/simontudge/sweepy/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader
// interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .hcl file reachable from the given paths (files or
// directories) and merges all declared sweeps into one model, in file
// order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root schema.SweepConfig
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, sw := range root.Sweeps {
			translated, err := l.translateSweep(sw)
			if err != nil {
				return nil, fmt.Errorf("invalid sweep %q in %s: %w", sw.Name, file, err)
			}
			model.Sweeps = append(model.Sweeps, translated)
		}
	}

	logger.Debug("HCL loading complete.", "sweeps", len(model.Sweeps))
	return model, nil
}
