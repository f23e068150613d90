package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/simontudge/sweepy/internal/config"
	"github.com/simontudge/sweepy/internal/schema"
	"github.com/simontudge/sweepy/internal/sweep"
)

// translateSweep converts the HCL-specific sweep schema into the
// agnostic model, expanding linspace ranges and decoding fixed
// parameters.
func (l *Loader) translateSweep(s *schema.Sweep) (*config.Sweep, error) {
	out := &config.Sweep{
		ModelType:   s.ModelType,
		Name:        s.Name,
		Repetitions: 1,
	}
	if s.Repetitions != nil {
		out.Repetitions = *s.Repetitions
	}

	for _, p := range s.Parameters {
		param, err := l.translateParameter(p)
		if err != nil {
			return nil, err
		}
		out.Parameters = append(out.Parameters, param)
	}

	fixed, err := l.decodeFixed(s.Fixed)
	if err != nil {
		return nil, err
	}
	out.Fixed = fixed

	if s.Output != nil {
		out.Output = &config.Output{
			Directory: s.Output.Directory,
			Overwrite: s.Output.Overwrite,
			Format:    s.Output.Format,
			Plots:     s.Output.Plots == nil || *s.Output.Plots,
		}
	}
	return out, nil
}

// translateParameter expands a parameter block into its concrete value
// sequence. Exactly one of the two forms must be used: an explicit
// `values` list, or a full `from`/`to`/`count` range.
func (l *Loader) translateParameter(p *schema.ParameterBlock) (*config.Parameter, error) {
	hasValues := len(p.Values) > 0
	hasRange := p.From != nil || p.To != nil || p.Count != nil

	switch {
	case hasValues && hasRange:
		return nil, fmt.Errorf("parameter %q declares both values and a from/to/count range", p.Name)
	case hasValues:
		return &config.Parameter{Name: p.Name, Values: p.Values}, nil
	case hasRange:
		if p.From == nil || p.To == nil || p.Count == nil {
			return nil, fmt.Errorf("parameter %q needs all of from, to and count", p.Name)
		}
		if *p.Count < 1 {
			return nil, fmt.Errorf("parameter %q needs a count of at least 1, got %d", p.Name, *p.Count)
		}
		ps := sweep.Linspace(p.Name, *p.From, *p.To, *p.Count)
		return &config.Parameter{Name: p.Name, Values: ps.Values}, nil
	default:
		return nil, fmt.Errorf("parameter %q declares no values", p.Name)
	}
}

// decodeFixed evaluates the free-form attributes of the fixed block.
// Every fixed parameter must be a number; anything else is a config
// error surfaced at load time.
func (l *Loader) decodeFixed(block *schema.FixedBlock) (map[string]float64, error) {
	if block == nil || block.Body == nil {
		return nil, nil
	}
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read fixed block: %w", diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}

	fixed := make(map[string]float64, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate fixed parameter %q: %w", name, diags)
		}
		if val.Type() != cty.Number {
			return nil, fmt.Errorf("fixed parameter %q must be a number, got %s", name, val.Type().FriendlyName())
		}
		f, _ := val.AsBigFloat().Float64()
		fixed[name] = f
	}
	return fixed, nil
}
