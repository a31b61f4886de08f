package urlgen

import (
	"maps"

	"github.com/goliatone/go-urlgen/pkg/params"
	"github.com/goliatone/go-urlgen/pkg/render"
)

// Bag aliases params.Bag for callers that only need the facade.
type Bag = params.Bag

// Schema aliases params.Schema.
type Schema = params.Schema

// Values aliases params.Values.
type Values = params.Values

var defaultRegistry = render.NewDefaultRegistry()

// DefaultRegistry exposes the registry URL renders through.
func DefaultRegistry() *render.Registry {
	return defaultRegistry
}

// URL renders bag with the renderer registered for its schema kind.
func URL(bag *Bag, opts ...render.Option) (map[string]any, error) {
	return URLWith(defaultRegistry, bag, opts...)
}

// URLWith renders bag through the supplied registry.
func URLWith(registry *render.Registry, bag *Bag, opts ...render.Option) (map[string]any, error) {
	renderer, err := registry.ForSchema(bag.Schema())
	if err != nil {
		return nil, err
	}
	return renderer.Render(bag, render.NewRenderOptions(opts...))
}

// EnumeratedURL renders each bag under consecutive indices starting at
// first and merges the blocks into one mapping.
func EnumeratedURL(first int, bags ...*Bag) (map[string]any, error) {
	out := make(map[string]any)
	for offset, bag := range bags {
		block, err := URL(bag, render.WithIndex(first+offset))
		if err != nil {
			return nil, err
		}
		maps.Copy(out, block)
	}
	return out, nil
}
