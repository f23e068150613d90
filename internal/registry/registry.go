package registry

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/simontudge/sweepy/internal/sweep"
)

// Module is the interface model packages implement to register their
// models with an application instance.
type Module interface {
	Register(r *Registry)
}

// RegisteredModel holds the Go side of one named model. Exactly one of
// Fn and New must be set: Fn for a function-shaped model, New for a
// factory producing a fresh stateful model per sweep.
type RegisteredModel struct {
	Description string
	Fn          sweep.Func
	New         func() sweep.Stateful
}

// Adapter builds the uniform invocation adapter for this model,
// instantiating a fresh stateful model when the registration is
// factory-shaped.
func (m *RegisteredModel) Adapter() (*sweep.Adapter, error) {
	switch {
	case m.Fn != nil && m.New != nil:
		return nil, &sweep.UnsupportedModelError{Reason: "model registered as both function and stateful"}
	case m.Fn != nil:
		return sweep.AdaptFunc(m.Fn)
	case m.New != nil:
		return sweep.AdaptStateful(m.New())
	default:
		return nil, &sweep.UnsupportedModelError{Reason: "model registered with neither function nor factory"}
	}
}

// Registry holds all registered models for a single application
// instance.
type Registry struct {
	models map[string]*RegisteredModel
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{models: make(map[string]*RegisteredModel)}
}

// RegisterModel registers a named model. Registering the same name
// twice is a programmer error and panics.
func (r *Registry) RegisterModel(name string, model *RegisteredModel) {
	if _, exists := r.models[name]; exists {
		panic(fmt.Sprintf("model with name '%s' already registered", name))
	}
	slog.Debug("Registering model.", "name", name)
	r.models[name] = model
}

// Model looks up a registered model by name.
func (r *Registry) Model(name string) (*RegisteredModel, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
