package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/simontudge/sweepy/internal/config"
	"github.com/simontudge/sweepy/internal/sweep"
)

func noop(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	return map[string]float64{"y": 0}, nil
}

func TestRegisterModel_DuplicatePanics(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterModel("m", &RegisteredModel{Fn: noop})
	require.Panics(t, func() {
		r.RegisterModel("m", &RegisteredModel{Fn: noop})
	})
}

func TestRegistry_ModelLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterModel("b", &RegisteredModel{Fn: noop})
	r.RegisterModel("a", &RegisteredModel{Fn: noop})

	_, ok := r.Model("a")
	require.True(t, ok)
	_, ok = r.Model("missing")
	require.False(t, ok)
	require.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegisteredModel_AdapterShapes(t *testing.T) {
	t.Parallel()

	fnModel := &RegisteredModel{Fn: noop}
	adapter, err := fnModel.Adapter()
	require.NoError(t, err)
	require.NotNil(t, adapter)

	var modelErr *sweep.UnsupportedModelError

	empty := &RegisteredModel{}
	_, err = empty.Adapter()
	require.ErrorAs(t, err, &modelErr)

	both := &RegisteredModel{Fn: noop, New: func() sweep.Stateful { return nil }}
	_, err = both.Adapter()
	require.ErrorAs(t, err, &modelErr)
}

func TestValidate_UnknownModelFailsFast(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterModel("known", &RegisteredModel{Fn: noop})

	model := &config.Model{Sweeps: []*config.Sweep{
		{ModelType: "unknown", Name: "bad"},
	}}

	err := r.Validate(context.Background(), model)
	require.ErrorContains(t, err, `unknown model "unknown"`)
	require.ErrorContains(t, err, "known")
}

func TestValidate_AcceptsRegisteredSweeps(t *testing.T) {
	t.Parallel()

	r := New()
	r.RegisterModel("known", &RegisteredModel{Fn: noop})

	model := &config.Model{Sweeps: []*config.Sweep{
		{ModelType: "known", Name: "fine"},
	}}
	require.NoError(t, r.Validate(context.Background(), model))
}
