package render

import (
	"github.com/goliatone/go-urlgen/pkg/params"
)

// Renderer turns a validated bag into the final encoded key to value mapping.
type Renderer interface {
	// Name matches the params.Kind name the renderer serves.
	Name() string
	// Key returns the output key for a stored encoded key of schema.
	Key(schema *params.Schema, key string, options RenderOptions) (string, error)
	// Render validates bag and returns its output mapping.
	Render(bag *params.Bag, options RenderOptions) (map[string]any, error)
}

// renderKeys validates bag and re-keys every stored value through r.Key.
func renderKeys(r Renderer, bag *params.Bag, options RenderOptions) (map[string]any, error) {
	schema := bag.Schema()
	// surface kind, meta and index errors ahead of field validation
	if _, err := r.Key(schema, "", options); err != nil {
		return nil, err
	}
	if err := bag.Validate(); err != nil {
		return nil, err
	}
	stored := bag.Params()
	out := make(map[string]any, len(stored))
	for key, value := range stored {
		encoded, err := r.Key(schema, key, options)
		if err != nil {
			return nil, err
		}
		out[encoded] = value
	}
	return out, nil
}
