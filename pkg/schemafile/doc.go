// Package schemafile loads parameter schemas declared in YAML or JSON
// documents. Each document lists schemas by name; a schema names its parent
// either among the built-in generators (URLGenerator, PrefixURLGenerator,
// EnumeratedURLGenerator, AbstractURLGenerator) or among the schemas of the
// loaded documents, in any order. Omitting the parent selects URLGenerator.
package schemafile
