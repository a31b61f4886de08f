package render

import "github.com/goliatone/go-urlgen/pkg/params"

// Plain returns the stored values unchanged.
type Plain struct{}

// NewPlain constructs the plain renderer.
func NewPlain() Plain { return Plain{} }

// Name returns the plain kind name.
func (Plain) Name() string { return params.KindPlain.String() }

// Key returns key unchanged. Schema must be of the plain kind.
func (Plain) Key(schema *params.Schema, key string, _ RenderOptions) (string, error) {
	if err := checkKind(params.KindPlain, schema); err != nil {
		return "", err
	}
	return key, nil
}

// Render validates bag and returns a copy of its stored pairs.
func (p Plain) Render(bag *params.Bag, options RenderOptions) (map[string]any, error) {
	return renderKeys(p, bag, options)
}
