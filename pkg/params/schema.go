package params

import "strconv"

// Kind selects how bags of a schema are rendered. It is inherited from the
// parent schema and fixed by the built-in roots.
type Kind int

const (
	KindNone Kind = iota
	KindPlain
	KindPrefixed
	KindEnumerated
)

// String returns the renderer name associated with the kind.
func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindPrefixed:
		return "prefixed"
	case KindEnumerated:
		return "enumerated"
	default:
		return "none"
	}
}

// Meta is the naming configuration of a schema. The prefixes propagate to
// child schemas, Abstract does not.
type Meta struct {
	PresetPrefix string
	IndexPrefix  string
	CustomPrefix string
	ItemPrefix   string
	Abstract     bool
}

// Built-in abstract roots. Concrete schemas descend from one of the URL
// generators to pick up a renderer.
var (
	Base                   = Define("AbstractURLGenerator", nil, Abstract())
	URLGenerator           = Define("URLGenerator", Base, Abstract(), withKind(KindPlain))
	PrefixURLGenerator     = Define("PrefixURLGenerator", Base, Abstract(), withKind(KindPrefixed))
	EnumeratedURLGenerator = Define("EnumeratedURLGenerator", Base, Abstract(), withKind(KindEnumerated))
)

// Schema is the aggregated declaration of a parameter bag type.
type Schema struct {
	name       string
	parent     *Schema
	kind       Kind
	meta       Meta
	fields     []NamedComponent
	variables  []NamedVariable
	fieldNames []string
	declared   map[string]struct{}

	// populated for concrete schemas only
	nameToKey map[string]string
	keyToName map[string]string
	required  map[string]struct{}
	keyOrder  []string
}

// Option declares a field or a naming override on a schema definition.
type Option func(*definition)

type definition struct {
	fields    []NamedComponent
	variables []NamedVariable
	overrides []func(*Meta)
	kind      *Kind
}

// Field declares a fixed component.
func Field(name string, component Component) Option {
	return func(d *definition) {
		d.fields = append(d.fields, NamedComponent{Name: name, Component: component})
	}
}

// VariableField declares a variable component at the given index.
func VariableField(name string, index int) Option {
	return func(d *definition) {
		d.variables = append(d.variables, NamedVariable{Name: name, Variable: Variable{Index: index}})
	}
}

// PresetPrefix overrides the inherited preset prefix.
func PresetPrefix(prefix string) Option {
	return override(func(m *Meta) { m.PresetPrefix = prefix })
}

// IndexPrefix overrides the inherited index prefix.
func IndexPrefix(prefix string) Option {
	return override(func(m *Meta) { m.IndexPrefix = prefix })
}

// CustomPrefix overrides the inherited custom prefix used for variable keys.
func CustomPrefix(prefix string) Option {
	return override(func(m *Meta) { m.CustomPrefix = prefix })
}

// ItemPrefix overrides the inherited item prefix.
func ItemPrefix(prefix string) Option {
	return override(func(m *Meta) { m.ItemPrefix = prefix })
}

// Abstract marks the schema as abstract. Abstract schemas carry fields but
// cannot back a bag.
func Abstract() Option {
	return override(func(m *Meta) { m.Abstract = true })
}

func override(fn func(*Meta)) Option {
	return func(d *definition) {
		d.overrides = append(d.overrides, fn)
	}
}

func withKind(kind Kind) Option {
	return func(d *definition) {
		d.kind = &kind
	}
}

// Define aggregates the declarations of a new schema with those of parent.
// Inherited fields precede local ones. A field name declared again shares
// the accessor wired last. Two variable fields resolving to the same key
// collide silently and the later one owns the reverse lookup.
func Define(name string, parent *Schema, opts ...Option) *Schema {
	def := definition{}
	for _, opt := range opts {
		if opt != nil {
			opt(&def)
		}
	}

	s := &Schema{name: name, parent: parent}
	if parent != nil {
		s.kind = parent.kind
		s.meta = parent.meta
		s.meta.Abstract = false
	}
	if def.kind != nil {
		s.kind = *def.kind
	}
	for _, fn := range def.overrides {
		fn(&s.meta)
	}

	if parent != nil {
		s.fields = append(append([]NamedComponent(nil), parent.fields...), def.fields...)
		s.variables = append(append([]NamedVariable(nil), parent.variables...), def.variables...)
		s.fieldNames = append([]string(nil), parent.fieldNames...)
	} else {
		s.fields = def.fields
		s.variables = def.variables
	}
	for _, f := range def.fields {
		s.fieldNames = append(s.fieldNames, f.Name)
	}
	for _, v := range def.variables {
		s.fieldNames = append(s.fieldNames, v.Name)
	}
	s.declared = make(map[string]struct{}, len(s.fieldNames))
	for _, n := range s.fieldNames {
		s.declared[n] = struct{}{}
	}

	if !s.meta.Abstract {
		s.wire()
	}
	return s
}

func (s *Schema) wire() {
	s.nameToKey = make(map[string]string, len(s.fieldNames))
	s.keyToName = make(map[string]string, len(s.fieldNames))
	s.required = make(map[string]struct{})

	bind := func(name, key string) {
		s.nameToKey[name] = key
		if _, seen := s.keyToName[key]; !seen {
			s.keyOrder = append(s.keyOrder, key)
		}
		s.keyToName[key] = name
	}
	for _, f := range s.fields {
		if f.Required {
			s.required[f.Key] = struct{}{}
		}
		bind(f.Name, f.Key)
	}
	for _, v := range s.variables {
		bind(v.Name, s.meta.CustomPrefix+strconv.Itoa(v.Index))
	}
}

// Name returns the schema name given to Define.
func (s *Schema) Name() string { return s.name }

// Parent returns the schema this one was derived from, if any.
func (s *Schema) Parent() *Schema { return s.parent }

// Kind reports the rendering strategy inherited by the schema.
func (s *Schema) Kind() Kind { return s.kind }

// Meta returns the resolved naming configuration.
func (s *Schema) Meta() Meta { return s.meta }

// Abstract reports whether the schema can back a bag.
func (s *Schema) Abstract() bool { return s.meta.Abstract }

// Fields returns the fixed components, inherited ones first.
func (s *Schema) Fields() []NamedComponent {
	return append([]NamedComponent(nil), s.fields...)
}

// Variables returns the variable components, inherited ones first.
func (s *Schema) Variables() []NamedVariable {
	return append([]NamedVariable(nil), s.variables...)
}

// FieldNames returns every declared field name in declaration order.
func (s *Schema) FieldNames() []string {
	return append([]string(nil), s.fieldNames...)
}

// HasField reports whether name is declared anywhere in the chain.
func (s *Schema) HasField(name string) bool {
	_, ok := s.declared[name]
	return ok
}

// Key returns the encoded key bound to a field name. Abstract schemas bind
// no keys.
func (s *Schema) Key(name string) (string, bool) {
	key, ok := s.nameToKey[name]
	return key, ok
}

// FieldName returns the field name owning an encoded key.
func (s *Schema) FieldName(key string) (string, bool) {
	name, ok := s.keyToName[key]
	return name, ok
}

// Keys returns the encoded keys of a concrete schema, fixed components first.
func (s *Schema) Keys() []string {
	return append([]string(nil), s.keyOrder...)
}

// RequiredKeys returns the encoded keys of required fixed components.
func (s *Schema) RequiredKeys() []string {
	out := make([]string, 0, len(s.required))
	for _, key := range s.keyOrder {
		if _, ok := s.required[key]; ok {
			out = append(out, key)
		}
	}
	return out
}

// IsA reports whether s is other or descends from it.
func (s *Schema) IsA(other *Schema) bool {
	for cur := s; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// CheckInstantiable reports why the schema cannot back a bag: it is
// abstract, or it renders prefixed keys without both prefixes configured.
func (s *Schema) CheckInstantiable() error {
	if s.meta.Abstract {
		return ErrAbstractSchema
	}
	if s.kind == KindPrefixed {
		if s.meta.PresetPrefix == "" {
			return &MetaError{Field: "preset_prefix"}
		}
		if s.meta.IndexPrefix == "" {
			return &MetaError{Field: "index_prefix"}
		}
	}
	return nil
}
