package openapi

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-urlgen/pkg/params"
	"github.com/goliatone/go-urlgen/pkg/render"
)

// Parameters returns one query parameter per encoded key of schema, keyed
// the way renderer writes them. Fixed components come first; required fixed
// components are marked required.
func Parameters(schema *params.Schema, renderer render.Renderer, opts ...render.Option) (openapi3.Parameters, error) {
	if schema == nil {
		return nil, params.ErrNilSchema
	}
	if renderer == nil {
		return nil, fmt.Errorf("openapi: renderer is required")
	}
	if err := schema.CheckInstantiable(); err != nil {
		return nil, err
	}

	options := render.NewRenderOptions(opts...)
	required := make(map[string]struct{})
	for _, key := range schema.RequiredKeys() {
		required[key] = struct{}{}
	}

	keys := schema.Keys()
	out := make(openapi3.Parameters, 0, len(keys))
	for _, key := range keys {
		encoded, err := renderer.Key(schema, key, options)
		if err != nil {
			return nil, fmt.Errorf("openapi: encode %q: %w", key, err)
		}
		name, _ := schema.FieldName(key)
		_, isRequired := required[key]

		param := openapi3.NewQueryParameter(encoded).
			WithDescription(fmt.Sprintf("%s.%s", schema.Name(), name)).
			WithSchema(openapi3.NewStringSchema()).
			WithRequired(isRequired)
		out = append(out, &openapi3.ParameterRef{Value: param})
	}
	return out, nil
}
