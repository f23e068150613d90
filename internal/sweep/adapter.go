package sweep

import "context"

// Func is the function-shaped model contract: named numeric parameters
// in, named numeric outputs out.
type Func func(ctx context.Context, params map[string]float64) (map[string]float64, error)

// Stateful is the object-shaped model contract. Setup runs once before
// the first trial of a sweep and Teardown once after the last; Evaluate
// performs the same role as Func.
type Stateful interface {
	Setup(ctx context.Context) error
	Evaluate(ctx context.Context, params map[string]float64) (map[string]float64, error)
	Teardown(ctx context.Context) error
}

// modelKind tags which variant an Adapter wraps.
type modelKind int

const (
	kindFunc modelKind = iota + 1
	kindStateful
)

// Adapter normalizes both supported model shapes behind one Invoke
// operation. It is an explicit tagged variant rather than runtime shape
// sniffing: exactly one of the two constructors builds it, and the kind
// is fixed for the adapter's lifetime.
type Adapter struct {
	kind modelKind
	fn   Func
	obj  Stateful
}

// AdaptFunc wraps a function-shaped model.
func AdaptFunc(fn Func) (*Adapter, error) {
	if fn == nil {
		return nil, &UnsupportedModelError{Reason: "function model is nil"}
	}
	return &Adapter{kind: kindFunc, fn: fn}, nil
}

// AdaptStateful wraps an object-shaped model.
func AdaptStateful(m Stateful) (*Adapter, error) {
	if m == nil {
		return nil, &UnsupportedModelError{Reason: "stateful model is nil"}
	}
	return &Adapter{kind: kindStateful, obj: m}, nil
}

// Setup brackets the start of a sweep. It is a no-op for function
// models.
func (a *Adapter) Setup(ctx context.Context) error {
	if a.kind == kindStateful {
		return a.obj.Setup(ctx)
	}
	return nil
}

// Teardown brackets the end of a sweep. It is a no-op for function
// models. Callers must run it even when trials failed.
func (a *Adapter) Teardown(ctx context.Context) error {
	if a.kind == kindStateful {
		return a.obj.Teardown(ctx)
	}
	return nil
}

// Invoke evaluates the model once with the given named parameters.
func (a *Adapter) Invoke(ctx context.Context, params map[string]float64) (map[string]float64, error) {
	if a.kind == kindStateful {
		return a.obj.Evaluate(ctx, params)
	}
	return a.fn(ctx, params)
}
