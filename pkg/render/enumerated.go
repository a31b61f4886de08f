package render

import (
	"strconv"

	"github.com/goliatone/go-urlgen/pkg/params"
)

// Enumerated prepends the preset, index and item prefixes followed by the
// per-call index, so a list of items can each render their own block.
type Enumerated struct{}

// NewEnumerated constructs the enumerated renderer.
func NewEnumerated() Enumerated { return Enumerated{} }

// Name returns the enumerated kind name.
func (Enumerated) Name() string { return params.KindEnumerated.String() }

// Key returns the prefixes, the item index and key joined in that order.
// Options must carry an index.
func (Enumerated) Key(schema *params.Schema, key string, options RenderOptions) (string, error) {
	if err := checkKind(params.KindEnumerated, schema); err != nil {
		return "", err
	}
	if !options.HasIndex {
		return "", ErrIndexRequired
	}
	meta := schema.Meta()
	return meta.PresetPrefix + meta.IndexPrefix + meta.ItemPrefix + strconv.Itoa(options.Index) + key, nil
}

// Render validates bag and re-keys its stored pairs under options.Index.
func (e Enumerated) Render(bag *params.Bag, options RenderOptions) (map[string]any, error) {
	return renderKeys(e, bag, options)
}
