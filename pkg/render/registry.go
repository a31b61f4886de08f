package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-urlgen/pkg/params"
)

// Registry stores renderers by name. A renderer is registered under the
// name of the params.Kind it serves, and ForSchema looks a schema up by the
// kind inherited from its URL generator root. Registering a replacement
// renderer in a fresh registry changes how every schema of that kind
// renders.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// NewDefaultRegistry creates a registry holding the plain, prefixed and
// enumerated renderers.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	reg.MustRegister(NewPlain())
	reg.MustRegister(NewPrefixed())
	reg.MustRegister(NewEnumerated())
	return reg
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// ForSchema returns the renderer matching the schema kind. Schemas outside
// the URL generator roots have no renderer.
func (r *Registry) ForSchema(schema *params.Schema) (Renderer, error) {
	if schema == nil || schema.Kind() == params.KindNone {
		return nil, params.ErrRenderNotImplemented
	}
	return r.Get(schema.Kind().String())
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a renderer is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[name]
	return ok
}
