package render

import "github.com/goliatone/go-urlgen/pkg/params"

// Prefixed prepends the preset and index prefixes to every key. It serves
// sections that appear once per URL.
type Prefixed struct{}

// NewPrefixed constructs the prefixed renderer.
func NewPrefixed() Prefixed { return Prefixed{} }

// Name returns the prefixed kind name.
func (Prefixed) Name() string { return params.KindPrefixed.String() }

// Key returns presetPrefix+indexPrefix+key. Both prefixes must be set.
func (Prefixed) Key(schema *params.Schema, key string, _ RenderOptions) (string, error) {
	if err := checkKind(params.KindPrefixed, schema); err != nil {
		return "", err
	}
	meta := schema.Meta()
	if meta.PresetPrefix == "" {
		return "", &params.MetaError{Field: "preset_prefix"}
	}
	if meta.IndexPrefix == "" {
		return "", &params.MetaError{Field: "index_prefix"}
	}
	return meta.PresetPrefix + meta.IndexPrefix + key, nil
}

// Render validates bag and re-keys its stored pairs.
func (p Prefixed) Render(bag *params.Bag, options RenderOptions) (map[string]any, error) {
	return renderKeys(p, bag, options)
}
