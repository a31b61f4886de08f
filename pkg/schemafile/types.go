package schemafile

import (
	"sort"

	"github.com/goliatone/go-urlgen/pkg/params"
)

// Document is the on-disk layout of a schema file.
type Document struct {
	Schemas []SchemaDefinition `json:"schemas" yaml:"schemas" jsonschema:"required"`
}

// SchemaDefinition declares one schema.
type SchemaDefinition struct {
	Name      string               `json:"name" yaml:"name" jsonschema:"required,description=Unique schema name"`
	Parent    string               `json:"parent,omitempty" yaml:"parent,omitempty" jsonschema:"description=Built-in generator or schema to inherit from"`
	Abstract  bool                 `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Meta      MetaDefinition       `json:"meta,omitempty" yaml:"meta,omitempty"`
	Fields    []FieldDefinition    `json:"fields,omitempty" yaml:"fields,omitempty"`
	Variables []VariableDefinition `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// MetaDefinition overrides inherited naming configuration. Omitted values
// keep the inherited prefix.
type MetaDefinition struct {
	PresetPrefix *string `json:"presetPrefix,omitempty" yaml:"presetPrefix,omitempty"`
	IndexPrefix  *string `json:"indexPrefix,omitempty" yaml:"indexPrefix,omitempty"`
	CustomPrefix *string `json:"customPrefix,omitempty" yaml:"customPrefix,omitempty"`
	ItemPrefix   *string `json:"itemPrefix,omitempty" yaml:"itemPrefix,omitempty"`
}

// FieldDefinition declares a fixed component.
type FieldDefinition struct {
	Name     string `json:"name" yaml:"name" jsonschema:"required"`
	Key      string `json:"key" yaml:"key" jsonschema:"required"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// VariableDefinition declares a variable component.
type VariableDefinition struct {
	Name  string `json:"name" yaml:"name" jsonschema:"required"`
	Index *int   `json:"index" yaml:"index" jsonschema:"required"`
}

// Catalog holds the schemas built from loaded documents. It is safe for
// concurrent readers.
type Catalog struct {
	schemas map[string]*params.Schema
}

// Schema returns a loaded or built-in schema by name.
func (c *Catalog) Schema(name string) (*params.Schema, bool) {
	if c != nil {
		if s, ok := c.schemas[name]; ok {
			return s, true
		}
	}
	s, ok := builtins[name]
	return s, ok
}

// Names lists the loaded schema names, sorted.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.schemas))
	for name := range c.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the catalog holds no document schemas.
func (c *Catalog) Empty() bool {
	return c == nil || len(c.schemas) == 0
}

var builtins = map[string]*params.Schema{
	params.Base.Name():                   params.Base,
	params.URLGenerator.Name():           params.URLGenerator,
	params.PrefixURLGenerator.Name():     params.PrefixURLGenerator,
	params.EnumeratedURLGenerator.Name(): params.EnumeratedURLGenerator,
}
