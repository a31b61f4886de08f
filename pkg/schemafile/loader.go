package schemafile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-urlgen/pkg/params"
)

const defaultParent = "URLGenerator"

// LoadFS walks the provided filesystem, parses every JSON/YAML schema file
// and builds one catalog from all of them. A nil filesystem yields an empty
// catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	if fsys == nil {
		return &Catalog{schemas: make(map[string]*params.Schema)}, nil
	}

	var docs []sourcedDocument
	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schemafile: read %s: %w", path, err)
		}
		doc, err := Parse(data, path)
		if err != nil {
			return err
		}
		docs = append(docs, sourcedDocument{source: path, doc: doc})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return build(docs)
}

// LoadFile parses a single schema file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: read %s: %w", path, err)
	}
	doc, err := Parse(data, path)
	if err != nil {
		return nil, err
	}
	return build([]sourcedDocument{{source: path, doc: doc}})
}

// Build resolves the schemas of docs into a catalog.
func Build(docs ...Document) (*Catalog, error) {
	sourced := make([]sourcedDocument, 0, len(docs))
	for i, doc := range docs {
		sourced = append(sourced, sourcedDocument{source: fmt.Sprintf("document %d", i), doc: doc})
	}
	return build(sourced)
}

// Parse decodes a JSON or YAML document.
func Parse(data []byte, source string) (Document, error) {
	var doc Document
	if len(strings.TrimSpace(string(data))) == 0 {
		return Document{}, fmt.Errorf("schemafile: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	doc = Document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return Document{}, fmt.Errorf("schemafile: parse %s: invalid JSON or YAML", source)
}

// DocumentSchema describes the document layout as a JSON Schema, for editor
// integration and documentation.
func DocumentSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	return reflector.Reflect(&Document{})
}

type sourcedDocument struct {
	source string
	doc    Document
}

type pendingSchema struct {
	source string
	def    SchemaDefinition
}

func build(docs []sourcedDocument) (*Catalog, error) {
	pending := make(map[string]pendingSchema)
	var order []string
	for _, sd := range docs {
		for _, def := range sd.doc.Schemas {
			name := strings.TrimSpace(def.Name)
			if name == "" {
				return nil, fmt.Errorf("schemafile: file %s defines a schema without a name", sd.source)
			}
			if _, exists := builtins[name]; exists {
				return nil, fmt.Errorf("schemafile: schema %q (file %s) shadows a built-in generator", name, sd.source)
			}
			if prev, exists := pending[name]; exists {
				return nil, fmt.Errorf("schemafile: duplicate schema %q (files %s and %s)", name, prev.source, sd.source)
			}
			if err := checkDefinition(def, sd.source); err != nil {
				return nil, err
			}
			def.Name = name
			pending[name] = pendingSchema{source: sd.source, def: def}
			order = append(order, name)
		}
	}

	r := &resolver{
		pending:  pending,
		resolved: make(map[string]*params.Schema, len(pending)),
		visiting: make(map[string]bool),
	}
	for _, name := range order {
		if _, err := r.resolve(name); err != nil {
			return nil, err
		}
	}
	return &Catalog{schemas: r.resolved}, nil
}

func checkDefinition(def SchemaDefinition, source string) error {
	for _, f := range def.Fields {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("schemafile: schema %q (file %s) declares a field without a name", def.Name, source)
		}
		if f.Key == "" {
			return fmt.Errorf("schemafile: field %q of schema %q (file %s) requires a key", f.Name, def.Name, source)
		}
	}
	for _, v := range def.Variables {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("schemafile: schema %q (file %s) declares a variable without a name", def.Name, source)
		}
		if v.Index == nil {
			return fmt.Errorf("schemafile: variable %q of schema %q (file %s) requires an index", v.Name, def.Name, source)
		}
	}
	return nil
}

type resolver struct {
	pending  map[string]pendingSchema
	resolved map[string]*params.Schema
	visiting map[string]bool
}

func (r *resolver) resolve(name string) (*params.Schema, error) {
	if s, ok := r.resolved[name]; ok {
		return s, nil
	}
	if s, ok := builtins[name]; ok {
		return s, nil
	}
	entry, ok := r.pending[name]
	if !ok {
		return nil, fmt.Errorf("schemafile: unknown schema %q", name)
	}
	if r.visiting[name] {
		return nil, fmt.Errorf("schemafile: schema %q (file %s) is part of an inheritance cycle", name, entry.source)
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	parentName := strings.TrimSpace(entry.def.Parent)
	if parentName == "" {
		parentName = defaultParent
	}
	parent, err := r.resolve(parentName)
	if err != nil {
		return nil, fmt.Errorf("schemafile: resolve parent of %q (file %s): %w", name, entry.source, err)
	}

	schema := params.Define(name, parent, definitionOptions(entry.def)...)
	r.resolved[name] = schema
	return schema, nil
}

func definitionOptions(def SchemaDefinition) []params.Option {
	var opts []params.Option
	if def.Abstract {
		opts = append(opts, params.Abstract())
	}
	if def.Meta.PresetPrefix != nil {
		opts = append(opts, params.PresetPrefix(*def.Meta.PresetPrefix))
	}
	if def.Meta.IndexPrefix != nil {
		opts = append(opts, params.IndexPrefix(*def.Meta.IndexPrefix))
	}
	if def.Meta.CustomPrefix != nil {
		opts = append(opts, params.CustomPrefix(*def.Meta.CustomPrefix))
	}
	if def.Meta.ItemPrefix != nil {
		opts = append(opts, params.ItemPrefix(*def.Meta.ItemPrefix))
	}
	for _, f := range def.Fields {
		opts = append(opts, params.Field(strings.TrimSpace(f.Name), params.Component{Key: f.Key, Required: f.Required}))
	}
	for _, v := range def.Variables {
		opts = append(opts, params.VariableField(strings.TrimSpace(v.Name), *v.Index))
	}
	return opts
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
