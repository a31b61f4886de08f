package params

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Bag holds the values of one schema instance, keyed by encoded key.
type Bag struct {
	schema *Schema
	values map[string]any
}

// New builds a bag for schema. A bag source whose schema is schema or one
// of its descendants is copied wholesale; any other source is merged as in
// Update. Named values are applied last and nil entries are skipped.
func New(schema *Schema, src Source, named Values) (*Bag, error) {
	if schema == nil {
		return nil, ErrNilSchema
	}
	if err := schema.CheckInstantiable(); err != nil {
		return nil, err
	}

	b := &Bag{schema: schema}
	if src.bag != nil && src.bag.schema.IsA(schema) {
		b.values = maps.Clone(src.bag.values)
		if b.values == nil {
			b.values = make(map[string]any)
		}
	} else {
		b.values = make(map[string]any)
		if err := b.merge(src); err != nil {
			return nil, err
		}
	}
	if err := b.applyNamed(named); err != nil {
		return nil, err
	}
	return b, nil
}

// Schema returns the schema backing the bag.
func (b *Bag) Schema() *Schema { return b.schema }

// Get returns the value of a field, or nil when unset or undeclared.
func (b *Bag) Get(name string) any {
	v, _ := b.Lookup(name)
	return v
}

// Lookup returns the value of a field and whether it is set.
func (b *Bag) Lookup(name string) (any, bool) {
	key, ok := b.schema.nameToKey[name]
	if !ok {
		return nil, false
	}
	v, ok := b.values[key]
	return v, ok
}

// Set stores value for a field. Setting nil removes the field.
func (b *Bag) Set(name string, value any) error {
	key, ok := b.schema.nameToKey[name]
	if !ok {
		return &InvalidFieldError{Name: name}
	}
	if value == nil {
		delete(b.values, key)
		return nil
	}
	b.values[key] = value
	return nil
}

// Delete removes a field. Removing an unset field is a no-op.
func (b *Bag) Delete(name string) error {
	return b.Set(name, nil)
}

// Update merges src into the bag, then applies named values. A bag source
// overwrites every declared field, clearing the ones it does not set. A map
// source is applied key by key and stops at the first undeclared name, so
// earlier keys may already have been written.
func (b *Bag) Update(src Source, named Values) error {
	if err := b.merge(src); err != nil {
		return err
	}
	return b.applyNamed(named)
}

func (b *Bag) merge(src Source) error {
	if src.empty() {
		return nil
	}
	if src.bag != nil {
		other := src.bag
		for _, name := range b.schema.fieldNames {
			if !other.schema.HasField(name) {
				return fmt.Errorf("%w: %s does not declare %q", ErrUnsupportedSource, other.schema.name, name)
			}
		}
		for _, name := range b.schema.fieldNames {
			if err := b.Set(name, other.Get(name)); err != nil {
				return err
			}
		}
		return nil
	}
	for _, name := range sortedNames(src.values) {
		if !b.schema.HasField(name) {
			return &InvalidFieldError{Name: name}
		}
		if err := b.Set(name, src.values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bag) applyNamed(named Values) error {
	for _, name := range sortedNames(named) {
		if !b.schema.HasField(name) {
			return &InvalidFieldError{Name: name}
		}
		value := named[name]
		if value == nil {
			continue
		}
		if err := b.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Copy returns a bag with an independent copy of the values.
func (b *Bag) Copy() *Bag {
	values := maps.Clone(b.values)
	if values == nil {
		values = make(map[string]any)
	}
	return &Bag{schema: b.schema, values: values}
}

// IsEmpty reports whether no field is set.
func (b *Bag) IsEmpty() bool { return len(b.values) == 0 }

// Len returns the number of set fields.
func (b *Bag) Len() int { return len(b.values) }

// Validate fails with a *MissingRequiredError when a required component is
// unset.
func (b *Bag) Validate() error {
	var missing []string
	seen := make(map[string]struct{})
	for _, key := range b.schema.RequiredKeys() {
		if _, ok := b.values[key]; ok {
			continue
		}
		name := b.schema.keyToName[key]
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		missing = append(missing, name)
	}
	if len(missing) > 0 {
		return &MissingRequiredError{Fields: missing}
	}
	return nil
}

// Params returns a copy of the stored values keyed by encoded key.
func (b *Bag) Params() map[string]any {
	out := make(map[string]any, len(b.values))
	maps.Copy(out, b.values)
	return out
}

// String lists the set fields as name=value pairs in declaration order.
// Keys copied from a descendant bag that the schema does not declare follow
// in sorted order, labelled by their encoded key.
func (b *Bag) String() string {
	items := make([]string, 0, len(b.values))
	declared := make(map[string]struct{}, len(b.schema.keyOrder))
	for _, key := range b.schema.keyOrder {
		declared[key] = struct{}{}
		v, ok := b.values[key]
		if !ok {
			continue
		}
		items = append(items, fmt.Sprintf("%s=%#v", b.schema.keyToName[key], v))
	}
	for _, key := range sortedNames(b.values) {
		if _, ok := declared[key]; ok {
			continue
		}
		items = append(items, fmt.Sprintf("%s=%#v", key, b.values[key]))
	}
	return fmt.Sprintf("<%s: %s>", b.schema.name, strings.Join(items, ", "))
}

func sortedNames(values map[string]any) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
