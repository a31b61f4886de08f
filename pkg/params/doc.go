// Package params declares URL parameter schemas and the parameter bags built
// from them. A schema lists fixed components, rendered under a literal key,
// and variable components, rendered under the schema's custom prefix followed
// by a positional index. Schemas inherit fields and naming configuration from
// their parent, so tracking payloads can be layered from a shared base.
//
// Schemas are immutable once Define returns and can be shared freely. Bags
// are not safe for concurrent mutation.
package params
